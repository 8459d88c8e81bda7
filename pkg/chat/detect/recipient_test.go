package detect

import (
	"testing"
)

func TestDetectGender(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"quà cho nam 25 tuổi", GenderMale},
		{"tặng bố nhân ngày của cha", GenderMale},
		{"gift for my boyfriend", GenderMale},
		{"quà cho mẹ", GenderFemale},
		{"tặng bạn gái", GenderFemale},
		{"something for my wife", GenderFemale},
		{"quà sinh nhật", ""},
		// "nam" must match as a whole word only
		{"đặc sản vietnam", ""},
	}

	for _, tt := range tests {
		if got := DetectGender(tt.text); got != tt.want {
			t.Errorf("DetectGender(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectAge(t *testing.T) {
	tests := []struct {
		text      string
		wantYears int
		wantGroup string
	}{
		{"nữ 25 tuổi", 25, ""},
		{"ông 70 tuoi", 70, ""},
		{"a man 30 years old", 30, ""},
		{"quà cho trẻ em", 0, AgeGroupChild},
		{"tặng sinh viên", 0, AgeGroupYoung},
		{"người trung niên", 0, AgeGroupAdult},
		{"quà cho người già", 0, AgeGroupSenior},
		// explicit age beats the categorical bucket
		{"bé 5 tuổi", 5, ""},
		{"quà sinh nhật", 0, ""},
	}

	for _, tt := range tests {
		years, group := DetectAge(tt.text)
		if years != tt.wantYears || group != tt.wantGroup {
			t.Errorf("DetectAge(%q) = (%d, %q), want (%d, %q)",
				tt.text, years, group, tt.wantYears, tt.wantGroup)
		}
	}
}

func TestDetectRecipient(t *testing.T) {
	info := DetectRecipient("tìm quà cho nam 25 tuổi")
	if info.Gender != GenderMale {
		t.Errorf("Gender = %q, want %q", info.Gender, GenderMale)
	}
	if info.AgeYears != 25 {
		t.Errorf("AgeYears = %d, want 25", info.AgeYears)
	}
	if info.AgeGroup != "" {
		t.Errorf("AgeGroup = %q, want empty", info.AgeGroup)
	}

	if got := DetectRecipient("quà tết cho gia đình"); got.HasAny() {
		t.Errorf("DetectRecipient(no signals) = %+v, want empty", got)
	}
}
