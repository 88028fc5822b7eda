package recommendation

import "github.com/dietpartner/v2/internal/domain/diet"

func placeholderTable() PlaceholderCatalog {
	return PlaceholderCatalog{
		"leafy_green":  {"spinach", "kale", "arugula", "Swiss chard", "romaine"},
		"vegetable":    {"broccoli", "cauliflower", "zucchini", "bell peppers", "asparagus", "Brussels sprouts", "carrots", "green beans"},
		"fruit":        {"apple", "pear", "orange", "kiwi", "peach"},
		"berry":        {"blueberries", "raspberries", "strawberries", "blackberries"},
		"whole_grain":  {"quinoa", "brown rice", "barley", "buckwheat", "millet", "bulgur"},
		"lean_protein": {"chicken breast", "turkey breast", "tofu", "tempeh", "pork tenderloin"},
		"fatty_fish":   {"salmon", "mackerel", "sardines", "trout", "herring"},
		"legume":       {"lentils", "chickpeas", "black beans", "kidney beans", "edamame"},
		"nut_seed":     {"walnuts", "almonds", "chia seeds", "pumpkin seeds", "sunflower seeds", "pistachios"},
		"healthy_fat":  {"avocado", "olive oil", "ground flaxseed", "tahini"},
		"herb_spice":   {"cinnamon", "turmeric", "ginger", "garlic", "rosemary", "oregano"},
		"dairy_item":   {"Greek yogurt", "plain kefir", "cottage cheese", "low-fat milk"},
		"fermented":    {"sauerkraut", "kimchi", "plain kefir", "miso"},
		"egg_dish":     {"Vegetable omelet", "Two poached eggs", "Scrambled eggs", "Spinach frittata"},
		"low_gi_carb":  {"sweet potato", "lentils", "quinoa", "butternut squash", "chickpeas"},
	}
}

// Alternatives never contain a term registered under any allergen, so a
// substitution cannot reintroduce an allergen later in the fold.
var (
	milkAlternatives    = []string{"unsweetened rice beverage", "fortified pea protein beverage", "coconut beverage"}
	cheeseAlternatives  = []string{"nutritional yeast", "white bean spread", "mashed avocado"}
	yogurtAlternatives  = []string{"cultured coconut", "chia pudding"}
	butterAlternatives  = []string{"olive oil", "avocado spread"}
	creamAlternatives   = []string{"coconut whip", "blended white beans"}
	frozenAlternatives  = []string{"frozen banana sorbet", "coconut sorbet"}
	proteinAlternatives = []string{"pea protein", "hemp protein"}

	grainAlternatives  = []string{"quinoa", "buckwheat", "millet", "brown rice"}
	bakedAlternatives  = []string{"gluten-free loaf", "sweet potato rounds"}
	noodleAlternatives = []string{"rice noodles", "zucchini noodles"}
	snackAlternatives  = []string{"puffed amaranth", "seed crisps", "rice crisps"}
	starchAlternatives = []string{"cassava blend", "rice starch"}

	seedAlternatives   = []string{"sunflower seeds", "pumpkin seeds", "hemp seeds", "toasted coconut flakes"}
	spreadAlternatives = []string{"sunflower seed spread", "pumpkin seed spread"}

	landProteinAlternatives = []string{"chicken breast", "white beans", "shiitake mushrooms", "jackfruit"}
	fishAlternatives        = []string{"chicken breast", "lentil patties", "grilled portobello", "white beans"}
	omegaOilAlternatives    = []string{"algae oil", "ground flaxseed"}

	eggDishAlternatives  = []string{"chickpea scramble", "seasoned white beans"}
	omeletAlternatives   = []string{"chickpea pancake", "vegetable hash"}
	dressingAlternatives = []string{"mashed avocado", "olive oil dressing"}
	dessertAlternatives  = []string{"aquafaba whip", "chia pudding"}

	legumeAlternatives     = []string{"green peas", "lentils", "chickpeas"}
	seasoningAlternatives  = []string{"coconut aminos"}
	emulsifierAlternatives = []string{"sunflower emulsifier"}

	oilAlternatives = []string{"avocado oil", "olive oil"}
	dipAlternatives = []string{"white bean dip", "roasted pepper dip"}

	vegetableAlternatives = []string{"green peas", "diced bell pepper"}
)

func group(alternatives []string, terms ...string) []TermRule {
	rules := make([]TermRule, 0, len(terms))
	for _, t := range terms {
		rules = append(rules, TermRule{Term: t, Alternatives: alternatives})
	}
	return rules
}

func join(groups ...[]TermRule) []TermRule {
	var out []TermRule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func allergenTable() []AllergenRule {
	return []AllergenRule{
		{
			Allergen: "dairy", Severity: "high", Category: "protein",
			Terms: join(
				group(milkAlternatives, "milk"),
				group(cheeseAlternatives, "cheese", "cottage cheese", "mozzarella", "cheddar"),
				group(yogurtAlternatives, "yogurt", "kefir"),
				group(butterAlternatives, "butter"),
				group(creamAlternatives, "cream", "sour cream"),
				group(frozenAlternatives, "ice cream"),
				group(proteinAlternatives, "lactose", "casein", "whey"),
			),
		},
		{
			Allergen: "gluten", Severity: "high", Category: "grain",
			Terms: join(
				group(grainAlternatives, "wheat", "barley", "rye", "bulgur", "semolina", "spelt", "farro", "malt"),
				group([]string{"quinoa flakes", "buckwheat groats"}, "oats", "oatmeal"),
				group(bakedAlternatives, "bread", "toast"),
				group(noodleAlternatives, "pasta", "couscous"),
				group(snackAlternatives, "cereal", "crackers", "cookies", "cake"),
				group(starchAlternatives, "flour"),
			),
		},
		{
			Allergen: "nuts", Severity: "high", Category: "tree_nut",
			Terms: join(
				group(seedAlternatives,
					"almonds", "almond", "walnuts", "walnut", "pecans", "pecan", "cashews", "cashew",
					"hazelnuts", "hazelnut", "pistachios", "pistachio", "brazil nuts", "macadamia", "pine nuts", "nuts"),
				group(spreadAlternatives, "nut butter", "almond butter"),
				group([]string{"coconut beverage", "unsweetened rice beverage"}, "almond milk"),
			),
		},
		{
			Allergen: "peanuts", Severity: "high", Category: "legume",
			Terms: join(
				group([]string{"roasted sunflower seeds", "roasted pumpkin seeds"}, "peanut", "peanuts", "groundnut"),
				group(spreadAlternatives, "peanut butter"),
				group(oilAlternatives, "peanut oil"),
			),
		},
		{
			Allergen: "shellfish", Severity: "high", Category: "seafood",
			Terms: group(landProteinAlternatives,
				"shrimp", "crab", "lobster", "oysters", "mussels", "clams", "scallops", "crawfish", "prawns", "crayfish"),
		},
		{
			Allergen: "fish", Severity: "high", Category: "seafood",
			Terms: join(
				group(fishAlternatives,
					"salmon", "tuna", "cod", "mackerel", "sardines", "trout", "halibut", "bass",
					"flounder", "anchovies", "herring", "fish"),
				group(omegaOilAlternatives, "fish oil"),
			),
		},
		{
			Allergen: "eggs", Severity: "medium", Category: "protein",
			Terms: join(
				group(eggDishAlternatives, "egg", "eggs"),
				group(omeletAlternatives, "omelet", "omelette", "frittata"),
				group(dressingAlternatives, "mayonnaise"),
				group(dessertAlternatives, "albumin", "meringue", "custard"),
			),
		},
		{
			Allergen: "soy", Severity: "medium", Category: "legume",
			Terms: join(
				group(legumeAlternatives, "soy", "soybean", "edamame", "tofu", "tempeh"),
				group(proteinAlternatives, "soy protein"),
				group(seasoningAlternatives, "soy sauce", "miso"),
				group([]string{"unsweetened rice beverage", "coconut beverage"}, "soy milk"),
				group(emulsifierAlternatives, "lecithin"),
			),
		},
		{
			Allergen: "sesame", Severity: "medium", Category: "seed",
			Terms: join(
				group([]string{"sunflower seeds", "hemp seeds"}, "sesame", "sesame seeds"),
				group(spreadAlternatives, "tahini"),
				group(oilAlternatives, "sesame oil"),
				group(dipAlternatives, "hummus"),
			),
		},
		{
			Allergen: "corn", Severity: "low", Category: "grain",
			Terms: join(
				group(vegetableAlternatives, "corn", "maize"),
				group([]string{"arrowroot starch"}, "cornstarch"),
				group([]string{"maple syrup"}, "corn syrup"),
				group([]string{"roasted chickpeas"}, "popcorn"),
				group([]string{"quinoa", "millet mash"}, "polenta"),
			),
		},
	}
}

func sourceTable() []diet.Source {
	return []diet.Source{
		{
			Title:          "Anti-inflammatory Diet and Chronic Disease Prevention - Systematic Review",
			URL:            "https://pubmed.ncbi.nlm.nih.gov/",
			Type:           "pubmed",
			Summary:        "Comprehensive analysis of anti-inflammatory dietary patterns and their effects on chronic disease markers.",
			RelevanceScore: 0.95,
		},
		{
			Title:          "USDA National Nutrient Database - Comprehensive Food Composition",
			URL:            "https://fdc.nal.usda.gov/",
			Type:           "usda",
			Summary:        "Official nutritional composition data for thousands of foods including macro and micronutrients.",
			RelevanceScore: 0.90,
		},
		{
			Title:          "Academy of Nutrition and Dietetics - Evidence-Based Practice Guidelines",
			URL:            "https://eatright.org/",
			Type:           "eatright",
			Summary:        "Professional dietary guidelines based on systematic reviews and clinical evidence.",
			RelevanceScore: 0.88,
		},
		{
			Title:          "Harvard T.H. Chan School - Nutrition Source and Healthy Eating Plate",
			URL:            "https://hsph.harvard.edu/",
			Type:           "harvard",
			Summary:        "Evidence-based nutrition recommendations from leading public health researchers.",
			RelevanceScore: 0.92,
		},
	}
}
