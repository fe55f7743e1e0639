package repo

import (
	"time"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

// baselineMedications returns the sample medications inserted by
// SeedBaselineData, in insertion order.
func baselineMedications() []domain.MedicationInput {
	return []domain.MedicationInput{
		med("Ibuprofen", 1, "tablet", 6, "Morning and evening", "2023-05-15 08:00:00", "oral", "Take with food to avoid stomach upset", true, 7, "Upset stomach, dizziness", "May interact with blood pressure medications", 30),
		med("Amoxicillin", 1, "capsule", 8, "", "2023-05-14 12:00:00", "oral", "Complete full course even if symptoms improve", true, 10, "Diarrhea, rash", "May reduce effectiveness of birth control pills", 20),
		med("Lisinopril", 1, "tablet", 24, "Morning", "2023-05-15 07:30:00", "oral", "Take at the same time each day", true, 0, "Dry cough, dizziness", "Avoid potassium supplements", 90),
		med("Atorvastatin", 1, "tablet", 24, "Evening", "2023-05-14 20:00:00", "oral", "Take with or without food", true, 0, "Muscle pain, digestive issues", "Grapefruit may increase side effects", 30),
		med("Albuterol Inhaler", 2, "puff", 0, "As needed", "2023-05-15 09:00:00", "inhalation", "Shake well before use", false, 0, "Nervousness, rapid heartbeat", "May interact with beta-blockers", 200),
		med("Omeprazole", 1, "capsule", 24, "Before breakfast", "2023-05-15 07:00:00", "oral", "Take before eating", true, 14, "Headache, diarrhea", "May affect absorption of other drugs", 14),
		med("Metformin", 1, "tablet", 12, "Morning and evening", "2023-05-14 19:00:00", "oral", "Take with meals to reduce stomach upset", true, 0, "Nausea, diarrhea", "Contrast dye may affect kidney function", 60),
		med("Levothyroxine", 1, "tablet", 24, "Morning on empty stomach", "2023-05-15 06:00:00", "oral", "Take 30-60 minutes before breakfast", true, 0, "Palpitations, weight loss", "Calcium supplements may reduce absorption", 30),
		med("Sertraline", 1, "tablet", 24, "Morning or evening", "2023-05-14 08:00:00", "oral", "May take several weeks to feel full effect", true, 0, "Nausea, insomnia", "MAOIs can cause serious interactions", 30),
		med("Acetaminophen", 2, "tablet", 6, "", "2023-05-15 10:00:00", "oral", "Do not exceed 4000mg per day", false, 3, "Liver damage in overdose", "Alcohol increases risk of liver damage", 24),
		med("Diphenhydramine", 1, "capsule", 0, "At bedtime", "2023-05-14 22:00:00", "oral", "May cause drowsiness", false, 0, "Drowsiness, dry mouth", "May enhance alcohol effects", 30),
		med("Fluoxetine", 1, "capsule", 24, "Morning", "2023-05-15 08:30:00", "oral", "Swallow whole, do not crush", true, 0, "Headache, nervousness", "Do not take with MAOIs", 30),
		med("Simvastatin", 1, "tablet", 24, "Evening", "2023-05-14 21:00:00", "oral", "Take with or without food", true, 0, "Muscle pain, constipation", "Avoid grapefruit juice", 30),
		med("Loratadine", 1, "tablet", 24, "", "2023-05-15 09:00:00", "oral", "Non-drowsy formula", false, 0, "Headache, dry mouth", "May interact with certain antifungals", 10),
		med("Warfarin", 1, "tablet", 24, "Evening", "2023-05-14 18:00:00", "oral", "Maintain consistent vitamin K intake", true, 0, "Bleeding, bruising", "Many drug and food interactions", 30),
		med("Hydrochlorothiazide", 1, "tablet", 24, "Morning", "2023-05-15 07:00:00", "oral", "Take early to avoid nighttime urination", true, 0, "Increased urination, dizziness", "May increase lithium levels", 30),
		med("Insulin Glargine", 10, "units", 24, "Evening", "2023-05-14 20:30:00", "injection", "Inject under skin of abdomen, thigh or upper arm", true, 0, "Low blood sugar, weight gain", "Alcohol may increase hypoglycemia risk", 300),
		med("Diazepam", 1, "tablet", 0, "As needed", "2023-05-15 00:00:00", "oral", "Use only when necessary", false, 0, "Drowsiness, dizziness", "Alcohol increases CNS depression", 20),
		med("Cephalexin", 1, "capsule", 8, "", "2023-05-14 12:00:00", "oral", "Take with plenty of water", true, 7, "Diarrhea, stomach upset", "Probenecid may increase levels", 40),
		med("Prednisone", 2, "tablet", 24, "Morning with food", "2023-05-15 08:00:00", "oral", "Do not stop suddenly", true, 5, "Increased appetite, insomnia", "May reduce vaccine effectiveness", 10),
		med("Tramadol", 1, "tablet", 6, "", "2023-05-14 15:00:00", "oral", "May cause drowsiness", false, 3, "Dizziness, constipation", "Do not take with other CNS depressants", 18),
		med("Montelukast", 1, "tablet", 24, "At bedtime", "2023-05-15 21:00:00", "oral", "For asthma maintenance", true, 0, "Headache, stomach pain", "May interact with phenobarbital", 30),
		med("Esomeprazole", 1, "capsule", 24, "Before breakfast", "2023-05-14 07:30:00", "oral", "Swallow whole, do not chew", true, 14, "Headache, diarrhea", "May affect absorption of other drugs", 14),
		med("Metoprolol", 1, "tablet", 12, "Morning and evening", "2023-05-15 08:00:00", "oral", "Do not stop suddenly", true, 0, "Fatigue, dizziness", "May interact with other heart medications", 60),
		med("Losartan", 1, "tablet", 24, "", "2023-05-14 09:00:00", "oral", "May take with or without food", true, 0, "Dizziness, back pain", "NSAIDs may reduce effectiveness", 30),
		med("Doxycycline", 1, "tablet", 12, "", "2023-05-15 08:00:00", "oral", "Take with plenty of water, avoid lying down", true, 10, "Sun sensitivity, nausea", "Dairy products may reduce absorption", 20),
		med("Furosemide", 1, "tablet", 24, "Morning", "2023-05-14 07:00:00", "oral", "Take early to avoid nighttime urination", true, 0, "Increased urination, dizziness", "May increase lithium levels", 30),
		med("Cetirizine", 1, "tablet", 24, "", "2023-05-15 09:00:00", "oral", "Non-drowsy formula", false, 0, "Dry mouth, fatigue", "May interact with CNS depressants", 30),
		med("Gabapentin", 1, "capsule", 8, "", "2023-05-14 08:00:00", "oral", "Dose may be gradually increased", true, 0, "Dizziness, fatigue", "Antacids may reduce absorption", 90),
		med("Pantoprazole", 1, "tablet", 24, "Before breakfast", "2023-05-15 07:00:00", "oral", "Swallow whole with water", true, 14, "Headache, diarrhea", "May affect absorption of other drugs", 14),
	}
}

// baselineDescriptions returns descriptions for the first medications of
// baselineMedications, index for index. The rest stay undescribed.
func baselineDescriptions() []domain.DescriptionInput {
	return []domain.DescriptionInput{
		desc("tablet", "round", "white", "small", "500", "IB", "", "smooth", ""),
		desc("capsule", "oblong", "pink/white", "medium", "500", "AM", "", "smooth", ""),
		desc("tablet", "round", "blue", "small", "10", "L", "", "smooth", ""),
		desc("tablet", "oval", "white", "medium", "20", "A", "", "smooth", ""),
		desc("inhaler", "cylindrical", "blue", "medium", "", "", "", "", "medicinal"),
		desc("capsule", "oblong", "purple/white", "small", "20", "OM", "", "smooth", ""),
		desc("tablet", "round", "white", "small", "500", "MF", "", "smooth", ""),
		desc("tablet", "round", "pink", "small", "50", "LT", "", "smooth", ""),
		desc("tablet", "oval", "blue", "medium", "100", "Z", "", "smooth", ""),
		desc("tablet", "caplet", "white", "medium", "500", "APAP", "", "smooth", ""),
		desc("capsule", "oblong", "pink", "small", "25", "D", "", "smooth", ""),
		desc("capsule", "oblong", "green/white", "medium", "20", "FLX", "", "smooth", ""),
		desc("tablet", "round", "yellow", "small", "40", "S", "", "smooth", ""),
		desc("tablet", "round", "white", "small", "10", "L", "", "smooth", ""),
		desc("tablet", "round", "pink", "small", "5", "W", "", "smooth", ""),
		desc("tablet", "round", "white", "small", "25", "H", "", "smooth", ""),
		desc("injection", "vial", "clear", "small", "", "", "", "liquid", ""),
		desc("tablet", "round", "white", "small", "5", "D", "", "smooth", ""),
		desc("capsule", "oblong", "red/white", "medium", "500", "CE", "", "smooth", ""),
		desc("tablet", "round", "white", "small", "10", "P", "", "smooth", ""),
	}
}

// med builds a medication input; zero numbers and empty strings mean absent.
func med(name string, dosage float64, unit string, freq float64, timing, lastTaken, route, special string,
	required bool, period int, sideEffects, interactions string, quantity float64) domain.MedicationInput {
	in := domain.MedicationInput{
		Name:               name,
		DosageQuantity:     dosage,
		DosageUnit:         unit,
		Timing:             optString(timing),
		Route:              route,
		SpecialDescription: optString(special),
		UsageRequired:      required,
		SideEffects:        optString(sideEffects),
		Interactions:       optString(interactions),
		Quantity:           quantity,
	}
	if freq > 0 {
		in.FrequencyHours = &freq
	}
	if period > 0 {
		in.UsagePeriod = &period
	}
	if lastTaken != "" {
		t, err := time.ParseInLocation("2006-01-02 15:04:05", lastTaken, time.UTC)
		if err != nil {
			panic(err)
		}
		in.LastTaken = &t
	}
	return in
}

func desc(form, shape, colors, size, numbers, letters, symbols, texture, odor string) domain.DescriptionInput {
	return domain.DescriptionInput{
		DosageForm: optString(form),
		Shape:      optString(shape),
		Colors:     optString(colors),
		Size:       optString(size),
		Numbers:    optString(numbers),
		Letters:    optString(letters),
		Symbols:    optString(symbols),
		Texture:    optString(texture),
		Odor:       optString(odor),
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
