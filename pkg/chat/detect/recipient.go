package detect

import (
	"regexp"
	"strconv"

	"giftshop-chatbot-be/pkg/store"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"

	AgeGroupChild  = "child"
	AgeGroupYoung  = "young"
	AgeGroupAdult  = "adult"
	AgeGroupSenior = "senior"
)

// The male list is scanned before the female list; with conflicting signals
// in one utterance the first matching class wins.
var (
	maleKeywords = []string{
		"nam", "anh", "ông", "bố", "ba", "cha", "chú", "cậu", "chồng",
		"con trai", "bạn trai", "anh trai", "em trai", "ông nội", "ông ngoại",
		"male", "man", "boy", "him", "his", "boyfriend", "husband", "father",
		"dad", "brother", "grandfather", "grandpa",
	}
	femaleKeywords = []string{
		"nữ", "nu", "chị", "cô", "bà", "mẹ", "má", "dì", "mợ", "vợ",
		"con gái", "bạn gái", "chị gái", "em gái", "bà nội", "bà ngoại",
		"female", "woman", "girl", "her", "girlfriend", "wife", "mother",
		"mom", "sister", "grandmother", "grandma",
	}
)

var (
	childKeywords = []string{
		"trẻ em", "tre em", "em bé", "em be", "thiếu nhi", "thieu nhi", "bé",
		"child", "kid", "baby", "toddler",
	}
	youngKeywords = []string{
		"thanh niên", "thanh nien", "sinh viên", "sinh vien", "học sinh",
		"hoc sinh", "giới trẻ", "gioi tre", "teen", "young", "student",
		"teenager",
	}
	adultKeywords = []string{
		"trung niên", "trung nien", "người lớn", "nguoi lon", "adult", "middle aged",
	}
	seniorKeywords = []string{
		"người già", "nguoi gia", "cao tuổi", "cao tuoi", "lớn tuổi",
		"lon tuoi", "già", "senior", "elderly",
	}
)

var explicitAgeRe = regexp.MustCompile(`\b(\d{1,3})\s*(tuổi|tuoi|years? old|yrs? old|y/o)\b`)

// DetectGender returns "male", "female" or "" for an utterance.
func DetectGender(text string) string {
	text = Normalize(text)
	if containsAnyWord(text, maleKeywords) != "" {
		return GenderMale
	}
	if containsAnyWord(text, femaleKeywords) != "" {
		return GenderFemale
	}
	return ""
}

// DetectAge tries an explicit numeric age first, then falls back to
// categorical buckets. Returns (years, group); both zero-valued when nothing
// was detected.
func DetectAge(text string) (int, string) {
	text = Normalize(text)

	if m := explicitAgeRe.FindStringSubmatch(text); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil && years > 0 {
			return years, ""
		}
	}

	for _, bucket := range []struct {
		group    string
		keywords []string
	}{
		{AgeGroupChild, childKeywords},
		{AgeGroupYoung, youngKeywords},
		{AgeGroupAdult, adultKeywords},
		{AgeGroupSenior, seniorKeywords},
	} {
		if containsAnyWord(text, bucket.keywords) != "" {
			return 0, bucket.group
		}
	}
	return 0, ""
}

// DetectRecipient combines gender and age detection into a RecipientInfo.
func DetectRecipient(text string) store.RecipientInfo {
	years, group := DetectAge(text)
	return store.RecipientInfo{
		Gender:   DetectGender(text),
		AgeYears: years,
		AgeGroup: group,
	}
}
