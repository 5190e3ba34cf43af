package ai

import "google.golang.org/genai"

func str(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

// ProgramSchema is the response schema for a generated workout program.
func ProgramSchema() *genai.Schema {
	exercise := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":  str(""),
			"sets":  str(""),
			"reps":  str(""),
			"rest":  str(""),
			"notes": str("Kullanıcının hikayesine özel uyarılar (Örn: Maç öncesi hafif çalış)"),
			"guide": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"howTo": str("Çok kısa yapılış ipuçları"),
				},
			},
		},
		PropertyOrdering: []string{"name", "sets", "reps", "rest", "notes", "guide"},
	}
	day := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"dayName":   str("Örn: Gün 1 - Göğüs & Arka Kol"),
			"exercises": {Type: genai.TypeArray, Items: exercise},
		},
		PropertyOrdering: []string{"dayName", "exercises"},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"programName": str("Programın havalı ve kişiye özel ismi"),
			"targetGoal":  str("Programın ana hedefi"),
			"difficulty":  str("Zorluk seviyesi"),
			"days":        {Type: genai.TypeArray, Items: day},
		},
		PropertyOrdering: []string{"programName", "targetGoal", "difficulty", "days"},
	}
}

// HealthAnalysisSchema is the response schema for the onboarding body analysis.
func HealthAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"bmi":             {Type: genai.TypeNumber, Description: "Vücut Kitle İndeksi"},
			"bodyFatEstimate": str("Tahmini yağ oranı yüzdesi (örn: %15-18)"),
			"bodyType":        str("Ectomorph, Endomorph, vs. veya açıklayıcı bir tanım"),
			"status":          str("Genel durum (Fit, Fazla Kilolu, Zayıf vb.)"),
			"feedback":        str("Kişisel tavsiye ve yorum"),
		},
	}
}
