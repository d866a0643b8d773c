package education

import "github.com/julianstephens/ecochallenge/internal/models"

var catalog = []models.EducationalContent{
	{
		ID:          "transport-1",
		Title:       "The carbon impact of transport modes",
		Description: "CO2 emissions per kilometre for each way of getting around",
		Category:    models.CategoryTransport,
		Type:        models.ContentArticle,
		ReadTime:    5,
		Level:       models.LevelBeginner,
		Tags:        []string{"transport", "emissions", "mobility"},
		Content: `# The carbon impact of transport

## Emissions per mode (g CO2/km/passenger)

- **Plane (domestic flight)**: 285 g
- **Car (gasoline)**: 210 g
- **Car (diesel)**: 190 g
- **Bus**: 80 g
- **Regional train**: 70 g
- **Metro**: 15 g
- **High-speed train**: 14 g
- **E-bike**: 8 g
- **Bike**: 0 g

## Practical tips

1. **Use public transport** for trips in town
2. **Carpool** to divide the impact by the number of passengers
3. **Take the train** rather than the plane for medium distances
4. **Cycle** for short trips (under 5 km)
5. **Work from home** when you can

## Did you know?

A return flight between Paris and New York emits about 2 tonnes of CO2, a
full year's budget under the Paris Agreement.
`,
	},
	{
		ID:          "energy-1",
		Title:       "Cutting energy use at home",
		Description: "A practical guide to lowering your bills and your impact",
		Category:    models.CategoryEnergy,
		Type:        models.ContentArticle,
		ReadTime:    7,
		Level:       models.LevelIntermediate,
		Tags:        []string{"energy", "savings", "insulation", "heating"},
		Content: `# Cutting your energy use

## The habits that matter most

### Heating (70% of consumption)
- **Lower by 1°C**: -7% consumption
- **Insulate**: up to -30% consumption
- **Schedule**: -10% with a smart thermostat

### Hot water (12% of consumption)
- **Shower instead of bath**: 3x less energy
- **Lower the temperature**: 55°C is enough
- **Insulate the tank**: -10% losses

### Appliances (18% of consumption)
- **Defrost** the freezer regularly
- **Wash cold**: -60% energy for the washing machine
- **Switch off** devices on standby: -10% on the bill

## Worthwhile investments

1. **LED bulbs**: -80% versus incandescent
2. **A+++ appliances**: -50% versus class A
3. **Heat pump**: 3x more efficient than electric heating
4. **Insulation**: pays for itself in 5 to 10 years

## Environmental impact

With a low-carbon grid, each kWh saved avoids about 57 g of CO2.
`,
	},
	{
		ID:          "food-1",
		Title:       "The environmental impact of our food",
		Description: "How our food choices affect the climate",
		Category:    models.CategoryFood,
		Type:        models.ContentArticle,
		ReadTime:    6,
		Level:       models.LevelBeginner,
		Tags:        []string{"food", "meat", "local", "organic"},
		Content: `# Food and the climate

## Emissions per food (kg CO2/kg)

### Animal protein
- **Beef**: 27
- **Lamb**: 24
- **Pork**: 12
- **Poultry**: 6
- **Fish**: 5

### Plant protein
- **Legumes**: 1
- **Cereals**: 1.5
- **Nuts**: 2

### Dairy
- **Cheese**: 11
- **Milk**: 3

## Ways to cut your impact

1. **Eat less red meat**: one meat-free day a week saves about 300 kg CO2/year
2. **Buy local and seasonal**: -20% transport emissions
3. **Waste less**: a third of food is thrown away
4. **Choose organic** when possible: -25% emissions on average

## Flexitarian eating

Halving meat while keeping a balanced diet can halve the impact of food.
`,
	},
	{
		ID:          "consumption-1",
		Title:       "Responsible shopping: buy less, buy better",
		Description: "A guide to more sustainable and cheaper consumption",
		Category:    models.CategoryConsumption,
		Type:        models.ContentArticle,
		ReadTime:    8,
		Level:       models.LevelIntermediate,
		Tags:        []string{"consumption", "circular economy", "second hand", "repair"},
		Content: `# Towards responsible consumption

## The 5 Rs

1. **Refuse** what you do not need
2. **Reduce** what you consume
3. **Reuse** and repair
4. **Recycle** what cannot be reused
5. **Rot**: compost organic waste

## Hidden footprint of everyday items

- **Smartphone**: about 70 kg CO2 to manufacture
- **Laptop**: about 300 kg CO2
- **Jeans**: about 25 kg CO2
- **T-shirt**: about 7 kg CO2

## Tips

- Keep devices longer: doubling a phone's life halves its footprint
- Buy second hand and refurbished
- Rent or borrow tools you rarely use
`,
	},
	{
		ID:          "general-1",
		Title:       "Understanding global warming",
		Description: "The basics of the greenhouse effect and climate change",
		Category:    models.CategoryGeneral,
		Type:        models.ContentArticle,
		ReadTime:    10,
		Level:       models.LevelBeginner,
		Tags:        []string{"climate", "science", "warming", "IPCC"},
		Content: `# Understanding global warming

## The greenhouse effect

Gases such as CO2, methane and nitrous oxide trap part of the heat the Earth
radiates. Human activity has raised their concentration sharply since the
industrial revolution.

## Key figures

- **+1.1°C** of warming since the pre-industrial era
- **420 ppm** of CO2 in the atmosphere, against 280 ppm in 1850
- **2 tonnes** of CO2 per person per year is the target for 2050

## Consequences

- Rising sea levels
- More frequent heatwaves and droughts
- Loss of biodiversity

## What we can do

Individual action matters: transport, heating, food and consumption make up
most of a personal footprint, and each can be reduced.
`,
	},
}
