package validation

import (
	"strings"
	"testing"
)

// ============================================================================
// EDGE CASE TESTS
// ============================================================================

func TestValidateInput_OnlySpecialCharacters(t *testing.T) {
	validator := NewDataValidator()

	testCases := []struct {
		name  string
		input string
	}{
		{"Only special chars", "!@#$%^&*()"},
		{"Only punctuation", "...,,,---"},
		{"Percent signs", "%%%%%"},
		{"At signs only", "@@@@@"},
		{"Hash only", "####"},
		{"Underscore only", "____"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateInput(tc.input)
			if err == nil {
				t.Errorf("Expected error for input with only special characters: '%s'", tc.input)
			}
		})
	}
}

func TestValidateInput_NullBytes(t *testing.T) {
	validator := NewDataValidator()

	inputWithNull := "abc\x00def"
	err := validator.ValidateInput(inputWithNull)
	if err == nil {
		t.Errorf("Expected error for input with null bytes")
	}
}

func TestValidateInput_UnicodeBeyondSpanish(t *testing.T) {
	validator := NewDataValidator()

	testCases := []struct {
		name  string
		input string
	}{
		{"Japanese characters", "漢字テスト"},
		{"Arabic characters", "مرحبا"},
		{"Hebrew characters", "שלום"},
		{"Cyrillic characters", "Привет"},
		{"Thai characters", "สวัสดี"},
		{"Korean characters", "안녕하세요"},
		{"Chinese characters", "你好"},
		{"Greek characters", "Γειά"},
		{"Hindi characters", "नमस्ते"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Only Latin letters plus Spanish accented characters are accepted
			err := validator.ValidateInput(tc.input)
			if err == nil {
				t.Errorf("Expected error for non-Spanish Unicode input: '%s'", tc.input)
			}
		})
	}
}

func TestValidateInput_Emojis(t *testing.T) {
	validator := NewDataValidator()

	testCases := []struct {
		name  string
		input string
	}{
		{"Simple emoji", "😀"},
		{"Pill emoji", "💊"},
		{"Multiple emojis", "😀😀😀"},
		{"Emoji with text", "test😀test"},
		{"Flag emoji", "🏳"},
		{"Heart emoji", "❤️"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateInput(tc.input)
			if err == nil {
				t.Errorf("Expected error for input with emojis: '%s'", tc.input)
			}
		})
	}
}

func TestValidateInput_SpanishAccents(t *testing.T) {
	validator := NewDataValidator()

	testCases := []struct {
		name  string
		input string
	}{
		{"Acute accents", "cúrcuma"},
		{"Enye", "uñas de gato"},
		{"Diaeresis", "agüita de azahar"},
		{"Uppercase accents", "MAGNESIO NATURAL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validator.ValidateInput(tc.input); err != nil {
				t.Errorf("Expected no error for Spanish input '%s', got: %v", tc.input, err)
			}
		})
	}
}

func TestValidateInput_VeryLongInput(t *testing.T) {
	validator := NewDataValidator()

	// Test with input exactly at boundary
	validInput := strings.Repeat("abcde", 20) // 100 chars
	err := validator.ValidateInput(validInput)
	if err != nil {
		t.Errorf("Expected no error for input at max length (100 chars), got: %v", err)
	}

	// Test with input just over boundary
	invalidInput := validInput + "a" // 101 chars
	err = validator.ValidateInput(invalidInput)
	if err == nil {
		t.Error("Expected error for input exceeding max length (101 chars)")
	}
}

func TestValidateInput_MinimumLength(t *testing.T) {
	validator := NewDataValidator()

	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{"Exactly 2 chars", "ab", false},
		{"Exactly 3 chars", "abc", true},
		{"Exactly 1 char", "a", false},
		{"Empty string", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateInput(tc.input)
			if tc.valid && err != nil {
				t.Errorf("Expected no error for valid input '%s', got: %v", tc.input, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("Expected error for invalid input '%s', got: %v", tc.input, err)
			}
		})
	}
}

func TestValidateSymptomText_WordBoundaries(t *testing.T) {
	validator := NewDataValidator()

	// Symptom text has no word count cap, long descriptions are expected
	longSentence := strings.Repeat("me duele la cabeza y ", 10) + "no puedo dormir"
	if err := validator.ValidateSymptomText(longSentence); err != nil {
		t.Errorf("Expected no error for long symptom sentence, got: %v", err)
	}
}
