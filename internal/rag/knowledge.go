package rag

// KnowledgeChunks is the built-in fitness knowledge base, one retrievable
// chunk per topic.
func KnowledgeChunks() []string {
	return []string{
		`Running improves cardiovascular health and burns 300-600 calories per hour. Ideal duration 20-60 minutes, 3-5 times per week. Best for weight loss, endurance and heart health.`,
		`Cycling is low-impact cardio burning 400-750 calories per hour and is easy on the joints. Good for endurance, leg strength and recovery days, 3-5 times per week.`,
		`Swimming is a full-body workout burning 400-700 calories per hour and works well for injury rehabilitation. Recommended 2-4 times per week.`,
		`HIIT burns 500-800 calories in 30 minutes and raises metabolism for 24-48 hours afterwards. Limit to 2-3 sessions per week because it needs recovery.`,
		`Weight training builds muscle mass, raises metabolic rate and burns 200-400 calories per hour. Train 3-5 times per week, split by muscle groups.`,
		`Bodyweight exercises like push-ups, pull-ups and squats build functional strength and suit beginners and home workouts, 3-4 times per week.`,
		`Yoga improves flexibility and reduces stress, burning 150-300 calories per hour. Pilates strengthens the core and posture at 200-350 calories per hour. Both fit 2-4 sessions per week.`,
		`Protein intake for muscle building: 1.6-2.2 g per kg bodyweight from chicken, fish, eggs, tofu or legumes. Essential for muscle repair and satiety.`,
		`Carbohydrates: 3-5 g per kg bodyweight for active individuals, from rice, oats, sweet potato and fruit. They fuel workouts and recovery. Fats: 0.8-1.2 g per kg from avocado, nuts, olive oil and fatty fish.`,
		`Hydration: 30-40 ml water per kg bodyweight daily, more during intense training. Drink 400-600 ml two to three hours before exercise and 150-250 ml every 15-20 minutes during hard sessions.`,
		`Meal timing: a balanced carb and protein meal 2-3 hours before training, an easily digestible snack 30-60 minutes before, and protein plus carbs within two hours after.`,
		`Weight loss: keep a 300-500 calorie deficit for a sustainable 0.5-1 kg per week. Combine cardio 3-5 times per week with strength training 3 times per week and high protein intake around 2.2 g per kg.`,
		`Muscle building: a 200-300 calorie surplus, progressive overload with 8-12 reps and 3-5 sets, training 3-5 times per week. Expect 0.25-0.5 kg gain per week while minimizing fat.`,
		`Endurance training: build an aerobic base at 60-80 percent of max heart rate, with one or two longer low-intensity sessions per week and a higher carbohydrate intake of 5-7 g per kg.`,
		`Strength gains: heavy loads at 80-95 percent of one-rep max, 3-6 reps, 4-6 sets, rest 3-5 minutes between sets, 3-4 sessions per week with full recovery.`,
		`Sleep 7-9 hours per night for muscle repair and hormone regulation. Keep the room dark and cool (18-20 C) and the schedule consistent.`,
		`Rest days prevent overtraining and injury: plan at least 1-2 full rest days per week, with optional active recovery such as walking, easy cycling or stretching.`,
		`Injury prevention: warm up 5-10 minutes with light cardio and dynamic stretching, cool down with static stretching, keep proper form and increase volume gradually (10 percent rule).`,
		`Heart rate zones: zone 2 (60-70 percent of max HR) burns fat, zone 4 (80-90 percent) trains lactate threshold. Estimate max heart rate as 220 minus age.`,
		`Caloric burn estimates per hour: walking 200-300, running 400-600, cycling 400-600, swimming 400-700, weight training 200-400, HIIT 500-800, yoga 150-300. Actual burn varies with weight and intensity.`,
		`Set SMART fitness goals: specific, measurable, achievable, relevant and time-bound. Example: lose 5 kg in 10 weeks through four cardio sessions per week and a caloric deficit.`,
		`Evidence-based supplements: protein powder 20-30 g per serving, creatine 3-5 g daily for strength, caffeine 3-6 mg per kg before workouts, omega-3 1-3 g daily. Whole foods remain the primary source.`,
	}
}
