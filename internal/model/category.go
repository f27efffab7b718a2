package model

import (
	"math/rand/v2"
	"strings"
)

// Category is one of the fixed waste classes produced by the classifier.
type Category string

// Waste categories understood by the disposal guide and fun-fact tables.
const (
	CategoryMetal     Category = "metal"
	CategoryGlass     Category = "glass"
	CategoryPlastic   Category = "plastic"
	CategoryTrash     Category = "trash"
	CategoryPaper     Category = "paper"
	CategoryFoodWaste Category = "food_waste"
	CategoryEWaste    Category = "e_waste"
	CategoryTextiles  Category = "textiles"
	CategoryHazardous Category = "hazardous"
	CategoryMedical   Category = "medical"
)

// NoDisposalGuide is shown when a label has no disposal guide.
const NoDisposalGuide = "No disposal instructions available."

// GenericFunFact is the last-resort fun fact.
const GenericFunFact = "Recycling saves energy!"

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryMetal,
		CategoryGlass,
		CategoryPlastic,
		CategoryTrash,
		CategoryPaper,
		CategoryFoodWaste,
		CategoryEWaste,
		CategoryTextiles,
		CategoryHazardous,
		CategoryMedical,
	}
}

// ParseCategory lower-cases a backend label. The result may be unknown;
// check it with IsKnown.
func ParseCategory(label string) Category {
	return Category(strings.ToLower(strings.TrimSpace(label)))
}

// IsKnown reports whether c is part of the fixed enumeration.
func (c Category) IsKnown() bool {
	switch c {
	case CategoryMetal, CategoryGlass, CategoryPlastic, CategoryTrash, CategoryPaper,
		CategoryFoodWaste, CategoryEWaste, CategoryTextiles, CategoryHazardous, CategoryMedical:
		return true
	default:
		return false
	}
}

// Spaced returns the label with underscores replaced by spaces ("food waste").
func (c Category) Spaced() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// DisplayName returns the badge text ("FOOD WASTE").
func (c Category) DisplayName() string {
	return strings.ToUpper(c.Spaced())
}

// DisposalGuide returns the disposal instructions for the category.
func (c Category) DisposalGuide() string {
	switch c {
	case CategoryMetal:
		return `How to Dispose of Metal in 3 Simple Steps

Sort and Clean: Separate metal items by type (e.g., aluminum, steel, copper) and remove non-metal parts. Clean off any residue or contaminants like grease or food.

Recycle or Sell: Take small items (e.g., cans) to curbside recycling if available. For larger items (e.g., appliances, tools), visit a local recycling center or scrap yard, where they may even pay you for the metal.

Follow Local Guidelines: Check local rules for proper disposal or recycling, and ensure hazardous items (like batteries) go to designated facilities.`
	case CategoryGlass:
		return `How to Dispose of Glass in 3 Simple Steps

Sort and Clean: Rinse glass items to remove residue, and separate them by type (e.g., bottles, jars) and color if required (clear, green, brown).

Recycle: Place clean glass items in your curbside recycling bin if accepted, or take them to a local glass recycling drop-off center. Avoid including broken glass unless permitted.

Handle Hazardous Glass Separately: Dispose of tempered glass (e.g., windows, mirrors) and non-recyclable glass (e.g., lightbulbs, ceramics) at designated facilities, following local guidelines.`
	case CategoryPlastic:
		return `How to Dispose of Plastic in 3 Simple Steps

Sort and Clean: Identify recyclable plastics by checking the recycling number (usually 1, 2, or 5). Rinse and remove food residues or labels.

Recycle or Reuse: Place recyclable plastics in curbside recycling bins if accepted, or take them to a nearby recycling facility. Consider reusing non-recyclable plastics for storage or DIY projects.

Avoid Landfill: For non-recyclable plastics, look for specialized recycling programs (e.g., for plastic bags or Styrofoam) and dispose of responsibly to minimize environmental impact.`
	case CategoryTrash:
		return `How to Dispose of Trash in 3 Simple Steps

Sort Trash: Separate recyclable, compostable, and hazardous items from general waste to minimize what goes to landfills.

Bag and Secure: Place non-recyclable, non-hazardous trash in durable garbage bags, ensuring they're sealed to prevent leaks or spills.

Dispose Properly: Drop off the trash at your local waste collection point or place it in your designated garbage bin for pickup on scheduled collection days.`
	case CategoryPaper:
		return `How to Dispose of Paper in 3 Simple Steps

Sort and Clean: Separate recyclable paper (e.g., newspapers, cardboard, office paper) from soiled or contaminated paper (e.g., greasy or wet paper). Remove staples or plastic if possible.

Recycle: Place clean, dry paper in your curbside recycling bin or take it to a local recycling facility. Flatten cardboard boxes to save space.

Compost Non-Recyclable Paper: Use shredded or soiled paper (e.g., napkins) as compost material, provided it's free of non-biodegradable coatings or inks.`
	case CategoryFoodWaste:
		return `How to Dispose of Food Waste

Compost: The best option! Use a compost bin or pile for fruit/veggie scraps, eggshells, and coffee grounds.

Green Bin: If your city has organic waste collection, place food scraps there.

Trash: Meat, dairy (if not compostable locally), and oils usually go in the trash. Avoid pouring oil down the drain.`
	case CategoryEWaste:
		return `How to Dispose of E-Waste

Don't Bin It: Never put electronics in regular trash/recycling bins.

Drop-off Centers: Find a certified e-waste recycler or drop-off point (like Best Buy or Staples).

Donate: working electronics can often be donated to charities.`
	case CategoryTextiles:
		return `How to Dispose of Textiles

Donate: Clean, usable clothes should be donated to thrift stores or charities.

Textile Recycling: Worn/torn clothes can often be recycled at specific drop boxes or by clothing brands (e.g., H&M).

Repurpose: Turn old t-shirts into cleaning rags!`
	case CategoryHazardous:
		return `How to Dispose of Hazardous Waste

Identify: Batteries, paint, chemicals, fluorescent bulbs.

Special Collection: These MUST go to a household hazardous waste facility or special collection event.

Safety: Keep in original containers if possible; do not mix chemicals.`
	case CategoryMedical:
		return `How to Dispose of Medical Waste

Sharps: Needles/syringes need a specialized sharps container (sturdy plastic). Check local "sharps" return programs.

Medication: Use pharmacy take-back programs or safe disposal kits. Do not flush meds unless instructed.`
	default:
		return NoDisposalGuide
	}
}

// FunFacts returns the fun-fact set for the category. Unknown categories
// use the trash set.
func (c Category) FunFacts() []string {
	switch c {
	case CategoryMetal:
		return []string{
			"Aluminum cans can be recycled indefinitely without losing quality!",
			"Recycling one aluminum can saves enough energy to run a TV for 3 hours.",
			"Steel is the most recycled material on Earth - over 650 million tons annually!",
		}
	case CategoryGlass:
		return []string{
			"Glass can be recycled endlessly without loss in quality or purity.",
			"Recycling glass saves 30% of the energy needed to make new glass.",
			"A glass bottle takes 4,000 years to decompose in a landfill!",
		}
	case CategoryPlastic:
		return []string{
			"Only 9% of all plastic ever made has been recycled.",
			"Plastic bottles take 450 years to decompose in landfills.",
			"Recycling one plastic bottle saves enough energy to power a lightbulb for 3 hours!",
		}
	case CategoryPaper:
		return []string{
			"Recycling one ton of paper saves 17 trees, 7,000 gallons of water, and 4,000 kW of energy!",
			"Paper can be recycled 5-7 times before the fibers become too short.",
			"The average American uses 7 trees worth of paper products each year.",
		}
	case CategoryFoodWaste:
		return []string{
			"Food waste in landfills generates methane, a potent greenhouse gas.",
			"About one-third of all food produced is lost or wasted.",
			"Composting saves money on fertilizers and improves soil health.",
		}
	case CategoryEWaste:
		return []string{
			"E-waste represents 2% of America's trash in landfills, but it equals 70% of overall toxic waste.",
			"Recycling 1 million laptops saves the energy equivalent to the electricity used by 3,657 US homes in a year.",
		}
	case CategoryTextiles:
		return []string{
			"The fashion industry is responsible for 10% of annual global carbon emissions.",
			"Textile recycling can give old clothes new life as insulation or padding.",
		}
	case CategoryHazardous:
		return []string{
			"One gallon of motor oil can contaminate one million gallons of fresh water.",
			"Fluorescent bulbs contain mercury and should essentially never be broken.",
		}
	case CategoryMedical:
		return []string{
			"Proper disposal of sharps prevents injury to waste workers.",
			"Unused medications flushed down the toilet can contaminate water supplies.",
		}
	case CategoryTrash:
		return trashFacts()
	default:
		return trashFacts()
	}
}

func trashFacts() []string {
	return []string{
		"The average person generates 4.5 pounds of trash per day.",
		"About 75% of waste is recyclable, but we only recycle about 30%.",
		"Composting food waste can reduce household trash by up to 30%!",
	}
}

// RandomFunFact picks one fact for the category using pick, which must
// return a value in [0, n). A nil pick uses math/rand.
func (c Category) RandomFunFact(pick func(n int) int) string {
	facts := c.FunFacts()
	if len(facts) == 0 {
		return GenericFunFact
	}
	if pick == nil {
		pick = rand.IntN
	}
	return facts[pick(len(facts))]
}
