package recommendation

import "github.com/dietpartner/v2/internal/domain/diet"

// conditionTable returns the guidance of every category. Fields left empty
// are inherited from the GeneralWellness entry.
func conditionTable() []ConditionKnowledge {
	return []ConditionKnowledge{
		diabetesKnowledge(),
		cardiovascularKnowledge(),
		antiInflammatoryKnowledge(),
		digestiveKnowledge(),
		energyKnowledge(),
		weightKnowledge(),
		generalKnowledge(),
	}
}

func diabetesKnowledge() ConditionKnowledge {
	return ConditionKnowledge{
		Category: diet.DiabetesManagement,
		Keywords: []string{"diabetes", "blood sugar", "glucose", "insulin", "diabetic", "a1c", "hyperglycemia"},
		Principles: []string{
			"Low glycemic index eating patterns reduce post-meal glucose spikes and improve HbA1c over time",
			"Pairing carbohydrates with protein, fiber and healthy fat slows glucose absorption",
			"Consistent carbohydrate portions across the day support stable insulin response",
		},
		FocusAreas: []string{
			"**Glycemic Control**: favour slow-release carbohydrates over refined starches",
			"**Fiber First**: reach 30-35g of fiber daily from vegetables, legumes and whole grains",
			"**Protein Balance**: include lean protein at every meal to blunt glucose swings",
			"**Insulin Sensitivity**: emphasise magnesium and chromium rich foods",
		},
		Therapeutic: []string{
			"**Cinnamon**: 1/2 tsp daily may modestly improve fasting glucose",
			"**Legumes**: lentils, chickpeas and beans provide slow-digesting carbohydrate",
			"**Leafy Greens**: spinach and kale are rich in magnesium with minimal carbohydrate",
			"**Vinegar**: 1 tbsp before meals may lower the post-meal glucose curve",
			"**Fatty Fish**: salmon and sardines twice weekly for omega-3 support",
		},
		Avoid: []string{
			"Sugar-sweetened beverages and fruit juices",
			"White bread, white rice and other refined starches",
			"Pastries, candy and desserts with added sugar",
			"Large carbohydrate portions eaten on their own",
		},
		Timing: []string{
			"**Regular Meals**: eat every 3-4 hours to avoid glucose dips and rebounds",
			"**Carbohydrate Distribution**: spread carbohydrates evenly across meals",
			"**Evening Cutoff**: finish the last meal 2-3 hours before bedtime",
			"**Post-Meal Movement**: a 10-15 minute walk after meals improves glucose uptake",
		},
		ShortTermBenefits: []string{
			"Smoother post-meal glucose readings",
			"Fewer energy crashes and sugar cravings",
			"Improved satiety between meals",
		},
		LongTermBenefits: []string{
			"Lower HbA1c and improved insulin sensitivity",
			"Reduced risk of diabetic complications",
			"Healthier body composition and lipid profile",
		},
		Monitoring: []string{
			"Check fasting and post-meal glucose as advised by your care team",
			"Review HbA1c every 3 months",
			"Log meals alongside glucose readings to spot patterns",
		},
		Supplements: []string{
			"Magnesium - 200-400mg daily to support insulin sensitivity",
			"Chromium picolinate - 200mcg daily (discuss with your doctor)",
			"Omega-3 fatty acids (EPA/DHA) - 1000mg daily",
			"Vitamin D3 - 1000-2000 IU daily (test levels first)",
		},
		Timeline: diet.Timeline{
			Immediate: []string{
				"Replace sugary drinks with water or unsweetened tea",
				"Add a protein source to every meal and snack",
				"Begin a food and glucose diary",
			},
		},
		Meals: MealTemplates{
			Breakfast: []string{
				"Steel-cut oats with [herb_spice] and [berry]",
				"[egg_dish] with [leafy_green] and whole grain toast",
				"[dairy_item] bowl topped with [nut_seed] and [berry]",
				"Chia seed pudding with [dairy_item] and [berry]",
				"Savory [whole_grain] porridge with [vegetable] and [healthy_fat]",
			},
			Lunch: []string{
				"[lean_protein] salad with [leafy_green], [vegetable] and olive oil dressing",
				"[whole_grain] bowl with roasted [vegetable] and [legume]",
				"[legume] and [vegetable] soup with [herb_spice]",
				"Turkey lettuce wraps with [healthy_fat] and [vegetable]",
				"Seared [fatty_fish] over [leafy_green] with lemon vinaigrette",
			},
			Dinner: []string{
				"Baked [fatty_fish] with roasted [vegetable]",
				"Lean beef with cauliflower rice and [leafy_green]",
				"[lean_protein] stir-fry with [vegetable] and [herb_spice]",
				"Grilled [lean_protein] with [low_gi_carb] and steamed [vegetable]",
				"[legume] curry with [leafy_green] over [whole_grain]",
			},
			Snacks: []string{
				"Celery sticks with [nut_seed]",
				"Hard-boiled eggs with [herb_spice]",
				"Cucumber slices with [dairy_item] dip",
				"Small handful of [nut_seed]",
				"[fruit] with a spoon of nut butter",
			},
		},
	}
}

func cardiovascularKnowledge() ConditionKnowledge {
	return ConditionKnowledge{
		Category: diet.CardiovascularHealth,
		Keywords: []string{"blood pressure", "heart", "cholesterol", "cardiovascular", "hypertension", "cardiac", "triglycerides"},
		Principles: []string{
			"DASH and Mediterranean eating patterns consistently lower blood pressure and LDL cholesterol",
			"Replacing saturated fat with unsaturated fat reduces cardiovascular events",
			"Sodium below 2300mg daily, ideally 1500mg, supports healthy blood pressure",
		},
		FocusAreas: []string{
			"**Heart-Healthy Fats**: olive oil, avocado, nuts and fatty fish",
			"**Sodium Reduction**: cook from whole ingredients and season with herbs",
			"**Potassium Rich Foods**: leafy greens, beans and bananas balance sodium",
			"**Soluble Fiber**: oats, legumes and fruit help lower LDL cholesterol",
		},
		Therapeutic: []string{
			"**Fatty Fish**: salmon, mackerel or sardines 2-3 times weekly",
			"**Oats and Barley**: beta-glucan fiber lowers LDL cholesterol",
			"**Walnuts**: 1 oz daily for plant omega-3 ALA",
			"**Beets and Leafy Greens**: dietary nitrates support healthy vessels",
			"**Garlic**: fresh garlic daily may modestly reduce blood pressure",
		},
		Avoid: []string{
			"Processed and cured meats high in sodium",
			"Fried foods and trans fats",
			"Salty snacks, canned soups and ready meals",
			"Excessive alcohol",
		},
		ShortTermBenefits: []string{
			"Lower sodium intake and less fluid retention",
			"Steadier energy from fiber-rich meals",
			"Early improvements in blood pressure readings",
		},
		LongTermBenefits: []string{
			"Reduced LDL cholesterol and triglycerides",
			"Lower long-term risk of heart attack and stroke",
			"Improved vascular function",
		},
		Monitoring: []string{
			"Measure blood pressure at home several times a week",
			"Review the lipid panel every 3-6 months",
			"Track daily sodium intake for the first month",
		},
		Supplements: []string{
			"Omega-3 fatty acids (EPA/DHA) - 1000-2000mg daily",
			"Coenzyme Q10 - 100-200mg daily (especially with statins)",
			"Magnesium - 200-400mg daily for blood pressure support",
			"Psyllium husk - 5-10g daily for cholesterol",
		},
		Timeline: diet.Timeline{
			Immediate: []string{
				"Remove the salt shaker and season with herbs and citrus",
				"Swap butter for olive oil in cooking",
				"Add one serving of leafy greens to lunch and dinner",
			},
		},
		Meals: MealTemplates{
			Breakfast: []string{
				"Oatmeal with [berry] and walnuts",
				"[dairy_item] with ground flaxseed and [fruit]",
				"Whole grain toast with [healthy_fat] and tomato",
				"Smoothie with [leafy_green], banana and chia seeds",
				"[whole_grain] porridge with [fruit] and [herb_spice]",
			},
			Lunch: []string{
				"Grilled [fatty_fish] with [whole_grain] and steamed [vegetable]",
				"[legume] soup with whole grain bread",
				"Mediterranean salad with [leafy_green], [legume] and olive oil dressing",
				"Turkey and [vegetable] wrap with hummus",
				"[whole_grain] salad with [vegetable] and [herb_spice]",
			},
			Dinner: []string{
				"Baked cod with sweet potato and [vegetable]",
				"Grilled [lean_protein] with brown rice and asparagus",
				"Vegetarian chili with [legume] and [vegetable]",
				"Stir-fried tofu with [vegetable] and [whole_grain]",
				"Herb-crusted [fatty_fish] with [leafy_green] and [low_gi_carb]",
			},
			Snacks: []string{
				"Mixed nuts and seeds",
				"Apple slices with almond butter",
				"Carrot sticks with hummus",
				"[berry] with a small square of dark chocolate",
				"Unsalted [nut_seed]",
			},
		},
	}
}

func antiInflammatoryKnowledge() ConditionKnowledge {
	return ConditionKnowledge{
		Category: diet.AntiInflammatory,
		Keywords: []string{"inflammation", "arthritis", "joint pain", "inflammatory", "autoimmune", "swelling"},
		Principles: []string{
			"Omega-3 rich diets lower inflammatory markers such as CRP and IL-6",
			"Polyphenol-rich plants reduce oxidative stress that drives chronic inflammation",
			"Limiting ultra-processed food and added sugar reduces inflammatory load",
		},
		FocusAreas: []string{
			"**Omega-3 Balance**: increase omega-3 and reduce excess omega-6 oils",
			"**Color Diversity**: eat at least five colors of plants each day",
			"**Spices**: turmeric and ginger used daily in cooking",
			"**Gut Health**: fermented foods and fiber support immune balance",
		},
		Therapeutic: []string{
			"**Turmeric**: 1-2 tsp daily with black pepper for absorption",
			"**Ginger**: fresh or dried, 1-2g daily",
			"**Tart Cherries**: anthocyanins that ease joint discomfort",
			"**Green Tea**: 2-3 cups daily for polyphenols",
			"**Extra Virgin Olive Oil**: oleocanthal with anti-inflammatory action",
		},
		Avoid: []string{
			"Refined sugars and high-fructose corn syrup",
			"Trans fats and hydrogenated oils",
			"Excessive omega-6 oils (corn, soybean, sunflower)",
			"Processed meats and deep-fried foods",
		},
		Supplements: []string{
			"Omega-3 fatty acids (EPA/DHA) - 2000mg daily",
			"Curcumin with piperine - 500mg daily",
			"Vitamin D3 - 1000-2000 IU daily (test levels first)",
			"Probiotics - multi-strain formula for gut health",
		},
		Timeline: diet.Timeline{
			Immediate: []string{
				"Start incorporating anti-inflammatory foods at every meal",
				"Cook with extra virgin olive oil instead of seed oils",
				"Add turmeric and ginger to one meal each day",
			},
		},
		Meals: MealTemplates{
			Breakfast: []string{
				"Golden [whole_grain] porridge with turmeric and [berry]",
				"Green smoothie with [leafy_green], pineapple and ginger",
				"[dairy_item] parfait with tart cherries and [nut_seed]",
				"[egg_dish] with [leafy_green] and [herb_spice]",
				"Buckwheat pancakes topped with [berry]",
			},
			Lunch: []string{
				"[fatty_fish] salad with [leafy_green] and extra virgin olive oil",
				"Turmeric [legume] soup with [vegetable]",
				"Quinoa bowl with roasted [vegetable], [healthy_fat] and [nut_seed]",
				"Sardines on whole grain crackers with [leafy_green]",
				"[lean_protein] and [vegetable] wrap with [herb_spice]",
			},
			Dinner: []string{
				"Baked [fatty_fish] with [herb_spice] and roasted [vegetable]",
				"[legume] and sweet potato curry with ginger",
				"Grilled [lean_protein] with [leafy_green] and [whole_grain]",
				"Mackerel with [vegetable] and brown rice",
				"Stir-fried [vegetable] with [lean_protein] and garlic",
			},
			Snacks: []string{
				"Walnuts and tart cherries",
				"[berry] with [dairy_item]",
				"Green tea with a handful of [nut_seed]",
				"Sliced [vegetable] with guacamole",
				"Dark chocolate with [fruit]",
			},
		},
	}
}

func digestiveKnowledge() ConditionKnowledge {
	return ConditionKnowledge{
		Category: diet.DigestiveHealth,
		Keywords: []string{"digestive", "stomach", "gut", "bloating", "constipation", "diarrhea", "ibs", "reflux"},
		Principles: []string{
			"Gradual fiber increases improve regularity without worsening bloating",
			"Fermented foods supply live cultures that support a diverse microbiome",
			"Smaller, regular meals reduce reflux and digestive discomfort",
		},
		FocusAreas: []string{
			"**Microbiome Support**: prebiotic fiber plus fermented foods",
			"**Gentle Fiber**: cooked vegetables and soluble fiber before raw bulk",
			"**Trigger Awareness**: identify foods that provoke symptoms",
			"**Hydration**: enough fluid for fiber to work",
		},
		Therapeutic: []string{
			"**Ginger**: eases nausea and supports gastric emptying",
			"**Peppermint Tea**: may relieve IBS-related cramping",
			"**Kefir and Sauerkraut**: sources of live cultures",
			"**Psyllium**: soluble fiber that normalises stool consistency",
			"**Papaya and Kiwi**: natural enzymes that aid digestion",
		},
		Avoid: []string{
			"Greasy and deep-fried foods",
			"Carbonated drinks and chewing gum that add gas",
			"Large late-night meals",
			"High-FODMAP foods during flare-ups (onion, garlic, certain legumes)",
		},
		Timing: []string{
			"**Smaller Meals**: 4-5 smaller meals instead of 2-3 large ones",
			"**Eat Slowly**: chew thoroughly and put the fork down between bites",
			"**Evening Cutoff**: stop eating 3 hours before lying down",
			"**Morning Routine**: warm water on waking to stimulate motility",
		},
		Supplements: []string{
			"Probiotics - multi-strain formula for gut health",
			"Psyllium husk - 5g daily, increased gradually",
			"Digestive enzymes with meals (discuss with your doctor)",
			"Magnesium citrate - 200mg in the evening for regularity",
		},
		Lifestyle: []string{
			"Practice mindful eating and chew food thoroughly",
			"Manage stress through breathing exercises or yoga",
			"Walk for 10-15 minutes after meals",
			"Keep a symptom diary to identify trigger foods",
			"Limit alcohol and avoid smoking",
		},
		Timeline: diet.Timeline{
			Immediate: []string{
				"Begin a food and symptom diary",
				"Add one fermented food daily",
				"Switch to smaller, more frequent meals",
			},
		},
		Meals: MealTemplates{
			Breakfast: []string{
				"[dairy_item] with [fruit] and ground flaxseed",
				"Oatmeal with stewed [fruit] and [herb_spice]",
				"Papaya and [berry] bowl with [nut_seed]",
				"Rice porridge with ginger and [leafy_green]",
				"[egg_dish] with sautéed [vegetable]",
			},
			Lunch: []string{
				"Bone broth with [vegetable] and [whole_grain]",
				"[lean_protein] with steamed [vegetable] and brown rice",
				"[legume] salad with cucumber and [herb_spice]",
				"Miso soup with [leafy_green] and [lean_protein]",
				"Baked [fatty_fish] with roasted [low_gi_carb]",
			},
			Dinner: []string{
				"Poached [fatty_fish] with [vegetable] and quinoa",
				"Slow-cooked [lean_protein] stew with [vegetable] and [herb_spice]",
				"[whole_grain] bowl with [fermented] and [leafy_green]",
				"Ginger [lean_protein] stir-fry with [vegetable]",
				"Lentil dal with [leafy_green] and brown rice",
			},
			Snacks: []string{
				"[dairy_item] with [berry]",
				"Banana with [nut_seed]",
				"Peppermint tea with rice crackers",
				"[fruit] slices",
				"Warm [vegetable] soup",
			},
		},
	}
}

func energyKnowledge() ConditionKnowledge {
	return ConditionKnowledge{
		Category: diet.EnergyVitality,
		Keywords: []string{"fatigue", "tired", "energy", "exhausted", "weakness", "lethargy"},
		Principles: []string{
			"Iron, B-vitamin and magnesium status strongly influence daily energy",
			"Balanced meals with protein and complex carbohydrates avoid energy crashes",
			"Mild dehydration alone measurably reduces alertness",
		},
		FocusAreas: []string{
			"**Steady Fuel**: complex carbohydrates paired with protein",
			"**Iron Status**: heme and plant iron with vitamin C for absorption",
			"**B-Vitamins**: whole grains, eggs, legumes and leafy greens",
			"**Hydration**: consistent fluid intake through the day",
		},
		Therapeutic: []string{
			"**Iron-Rich Foods**: spinach, lentils and pumpkin seeds",
			"**B-Vitamin Sources**: nutritional yeast, eggs and leafy greens",
			"**Magnesium Foods**: dark chocolate, seeds and leafy greens",
			"**Complex Carbohydrates**: quinoa, sweet potato and brown rice",
		},
		Avoid: []string{
			"Energy drinks and excess caffeine after noon",
			"Sugary breakfast foods that cause mid-morning crashes",
			"Skipping meals",
			"Alcohol close to bedtime",
		},
		Supplements: []string{
			"B-complex vitamins for energy metabolism",
			"Iron - only if deficiency is confirmed by blood test",
			"Magnesium - 200-400mg daily for muscle and nerve function",
			"Vitamin D3 - 1000-2000 IU daily (test levels first)",
			"Coenzyme Q10 - 100mg daily",
		},
		Timeline: diet.Timeline{
			Immediate: []string{
				"Eat a protein-rich breakfast within an hour of waking",
				"Increase water intake to 8-10 glasses daily",
				"Move caffeine to the morning only",
			},
		},
		Meals: MealTemplates{
			Breakfast: []string{
				"[egg_dish] with [leafy_green] and whole grain toast",
				"Oatmeal with [nut_seed], banana and [herb_spice]",
				"[dairy_item] with [berry] and pumpkin seeds",
				"Smoothie with [leafy_green], [fruit] and peanut butter",
				"[whole_grain] breakfast bowl with [legume] and [healthy_fat]",
			},
			Lunch: []string{
				"[lean_protein] with [whole_grain] and roasted [vegetable]",
				"Lentil and [leafy_green] salad with pumpkin seeds",
				"[fatty_fish] wrap with [vegetable]",
				"Beef and [vegetable] stir-fry with brown rice",
				"[legume] and quinoa bowl with [healthy_fat]",
			},
			Dinner: []string{
				"Grilled [fatty_fish] with [low_gi_carb] and [leafy_green]",
				"Turkey meatballs with [vegetable] and [whole_grain]",
				"[legume] stew with [leafy_green] and [herb_spice]",
				"Baked [lean_protein] with [vegetable] and sweet potato",
				"Stir-fried tofu with [vegetable] and buckwheat noodles",
			},
			Snacks: []string{
				"Trail mix with [nut_seed] and dried [fruit]",
				"Hard-boiled eggs",
				"[dairy_item] with a drizzle of honey",
				"Apple with peanut butter",
				"Hummus with [vegetable]",
			},
		},
	}
}

func weightKnowledge() ConditionKnowledge {
	return ConditionKnowledge{
		Category: diet.WeightManagement,
		Keywords: []string{"weight", "obesity", "overweight", "bmi", "weight loss", "weight gain"},
		Principles: []string{
			"A moderate calorie deficit with high protein preserves lean mass during weight loss",
			"High-volume, fiber-rich foods increase fullness per calorie",
			"Sustainable habits outperform restrictive short-term diets",
		},
		FocusAreas: []string{
			"**Protein Priority**: 25-30g protein per meal for satiety",
			"**Volume Eating**: half of each plate vegetables",
			"**Liquid Calories**: replace sugary drinks with water",
			"**Portion Awareness**: use smaller plates and measure calorie-dense foods",
		},
		Therapeutic: []string{
			"**Lean Proteins**: poultry, fish, legumes and tofu",
			"**Non-Starchy Vegetables**: unlimited leafy greens and cruciferous vegetables",
			"**Legumes**: fiber and protein in one food",
			"**Berries**: sweetness with few calories",
		},
		Avoid: []string{
			"Sugary drinks, including juices and sweetened coffees",
			"Ultra-processed snacks and fast food",
			"Large portions of calorie-dense foods eaten straight from the package",
			"Late-night grazing",
		},
		ShortTermBenefits: []string{
			"Reduced cravings and more stable appetite",
			"Less bloating and better digestion",
			"Initial weight change of 0.5-1 kg per week",
		},
		LongTermBenefits: []string{
			"Sustainable healthy body weight",
			"Improved metabolic markers and blood pressure",
			"Lower joint stress and better mobility",
		},
		Supplements: []string{
			"Psyllium husk - 5g before meals for fullness",
			"Vitamin D3 - 1000-2000 IU daily (test levels first)",
			"Protein powder only to reach daily protein targets",
		},
		Lifestyle: []string{
			"Aim for 150 minutes of moderate activity weekly plus strength training",
			"Ensure 7-9 hours of quality sleep nightly",
			"Eat without screens to notice fullness cues",
			"Plan meals and shop with a list",
			"Limit alcohol consumption",
		},
		Timeline: diet.Timeline{
			Immediate: []string{
				"Replace sugary drinks with water",
				"Fill half of each plate with vegetables",
				"Add a protein source to breakfast",
			},
		},
		Meals: MealTemplates{
			Breakfast: []string{
				"[egg_dish] with [vegetable]",
				"[dairy_item] with [berry] and chia seeds",
				"Protein smoothie with [leafy_green] and [berry]",
				"Overnight oats with [fruit] and [herb_spice]",
				"Cottage cheese with [fruit] and [nut_seed]",
			},
			Lunch: []string{
				"Large [leafy_green] salad with [lean_protein] and [vegetable]",
				"[legume] soup with [vegetable]",
				"[lean_protein] lettuce wraps with [healthy_fat]",
				"Zucchini noodles with [lean_protein] and tomato sauce",
				"[fatty_fish] with [vegetable] and a small portion of [whole_grain]",
			},
			Dinner: []string{
				"Grilled [lean_protein] with roasted [vegetable]",
				"Baked [fatty_fish] with [leafy_green] and cauliflower mash",
				"[legume] and [vegetable] chili",
				"Stir-fried [vegetable] with [lean_protein] and [herb_spice]",
				"Sheet-pan [lean_protein] with [low_gi_carb] and [vegetable]",
			},
			Snacks: []string{
				"[vegetable] sticks with hummus",
				"[fruit] with [nut_seed]",
				"[dairy_item]",
				"Air-popped popcorn with [herb_spice]",
				"Edamame with sea salt",
			},
		},
	}
}

func generalKnowledge() ConditionKnowledge {
	return ConditionKnowledge{
		Category: diet.GeneralWellness,
		Principles: []string{
			"Whole-food dietary patterns such as the Mediterranean diet are linked to lower chronic disease risk",
			"Diverse plant intake supports micronutrient status and gut health",
			"Regular meal timing supports stable energy and appetite",
		},
		FocusAreas: []string{
			"**Anti-Inflammatory Protocol**: prioritise foods that reduce systemic inflammation",
			"**Nutrient Density**: choose foods with high nutritional value per calorie",
			"**Metabolic Support**: include foods that support optimal metabolic function",
			"**Gut Health**: incorporate foods that promote healthy digestive function",
		},
		FoodGroups: []FoodGroup{
			{Name: "Vegetables & Fruits", Guidance: "7-9 servings daily", Items: []string{"leafy greens", "cruciferous vegetables", "colorful vegetables", "antioxidant-rich fruits"}},
			{Name: "Protein Sources", Guidance: "20-25% of daily calories", Items: []string{"fatty fish", "lean poultry", "legumes", "quinoa"}},
			{Name: "Complex Carbohydrates", Guidance: "40-45% of daily calories", Items: []string{"ancient grains", "brown rice", "starchy vegetables", "lentils"}},
			{Name: "Healthy Fats", Guidance: "25-30% of daily calories", Items: []string{"olive oil", "avocados", "flaxseeds", "chia seeds"}},
		},
		Therapeutic: []string{
			"**Turmeric**: 1-2 tsp daily with black pepper for absorption",
			"**Blueberries**: 1/2 cup daily for antioxidants",
			"**Leafy Greens**: daily source of folate and magnesium",
			"**Legumes**: fiber and plant protein several times a week",
		},
		Avoid: []string{
			"Ultra-processed foods and packaged snacks",
			"Refined sugars and sweetened drinks",
			"Trans fats and hydrogenated oils",
			"High-sodium processed foods (>2300mg daily limit)",
		},
		Hydration: []string{
			"**Water Intake**: 8-10 glasses daily, more with activity",
			"**Herbal Teas**: green tea, chamomile or ginger tea",
			"**Timing**: drink water 30 minutes before meals rather than during",
		},
		Timing: []string{
			"**Meal Frequency**: 3 main meals plus 1-2 healthy snacks",
			"**Overnight Fast**: consider a 12 hour overnight fast",
			"**Post-Exercise**: protein within 30 minutes after workouts",
			"**Evening Cutoff**: stop eating 2-3 hours before bedtime",
		},
		ShortTermBenefits: []string{
			"Improved energy levels and reduced fatigue",
			"Better digestive function and regularity",
			"Enhanced mood and mental clarity",
		},
		LongTermBenefits: []string{
			"Optimised body composition",
			"Improved cardiovascular health markers",
			"Enhanced immune function",
		},
		Monitoring: []string{
			"Track symptoms and energy levels daily",
			"Monitor relevant biomarkers every 3-6 months",
			"Adjust portions based on individual response",
			"Consider working with a registered dietitian for personalisation",
		},
		Supplements: []string{
			"Omega-3 fatty acids (EPA/DHA) - 1000-2000mg daily",
			"Vitamin D3 - 1000-2000 IU daily (test levels first)",
			"Magnesium - 200-400mg daily for muscle and nerve function",
			"Probiotics - multi-strain formula for gut health",
			"B-complex vitamins for energy metabolism",
		},
		Lifestyle: []string{
			"Practice mindful eating and chew food thoroughly",
			"Manage stress through meditation or yoga",
			"Ensure 7-9 hours of quality sleep nightly",
			"Stay physically active with regular exercise",
			"Limit alcohol consumption and avoid smoking",
		},
		Timeline: diet.Timeline{
			Immediate: []string{
				"Start incorporating whole, minimally processed foods",
				"Increase water intake to 8-10 glasses daily",
				"Begin a food diary to track symptoms and responses",
				"Eliminate processed foods and added sugars this week",
			},
			ShortTerm: []string{
				"Establish regular meal timing every 3-4 hours",
				"Add omega-3 rich foods 2-3 times per week",
				"Increase fiber intake gradually to 25-35g daily",
				"Incorporate 30 minutes of gentle physical activity daily",
			},
			LongTerm: []string{
				"Achieve optimal nutrient status through whole food sources",
				"Develop sustainable eating patterns for long-term health",
				"Regular monitoring of relevant health markers",
				"Build a support system for dietary lifestyle changes",
			},
		},
		Meals: MealTemplates{
			Breakfast: []string{
				"Whole grain cereal with fresh [fruit]",
				"Smoothie with [leafy_green] and [dairy_item]",
				"Oatmeal with [nut_seed] and [berry]",
				"[dairy_item] parfait with [fruit]",
				"[egg_dish] with whole grain toast",
			},
			Lunch: []string{
				"Grilled [lean_protein] with [whole_grain] and [vegetable]",
				"Large salad with [leafy_green], [legume] and [healthy_fat]",
				"[vegetable] soup with whole grain bread",
				"[lean_protein] and [vegetable] wrap",
				"[fatty_fish] bowl with [whole_grain] and [leafy_green]",
			},
			Dinner: []string{
				"Baked [fatty_fish] with roasted [vegetable]",
				"[lean_protein] with sweet potato and [leafy_green]",
				"[legume] with brown rice and [vegetable]",
				"Stir-fry with mixed [vegetable] and [herb_spice]",
				"Whole wheat pasta with [vegetable] and [lean_protein]",
			},
			Snacks: []string{
				"Fresh [fruit] with [nut_seed]",
				"[vegetable] sticks with hummus",
				"[dairy_item]",
				"Mixed seeds and [berry]",
				"[fermented] on the side of lunch",
			},
		},
	}
}
