package recommendation

import (
	"testing"
	"time"

	"github.com/dietpartner/v2/internal/domain/diet"
)

func benchmarkProfile(b *testing.B, allergies ...string) diet.SymptomProfile {
	b.Helper()
	profile, err := diet.NewSymptomProfile("my blood sugar spikes after meals and I feel tired", allergies)
	if err != nil {
		b.Fatal(err)
	}
	return profile
}

func BenchmarkClassifier_Classify(b *testing.B) {
	classifier := NewClassifier(NewKnowledgeBase())
	text := "joint pain, bloating after dinner and high blood pressure"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		classifier.Classify(text)
	}
}

func BenchmarkLocalGenerator_Generate(b *testing.B) {
	generator := NewLocalGenerator(NewKnowledgeBase(), time.Now)

	for _, bc := range []struct {
		name      string
		allergies []string
	}{
		{"no allergies", nil},
		{"three allergies", []string{"dairy", "nuts", "gluten"}},
	} {
		b.Run(bc.name, func(b *testing.B) {
			profile := benchmarkProfile(b, bc.allergies...)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := generator.Generate(profile, NewPicker(uint64(i))); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
