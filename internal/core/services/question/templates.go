package question

import (
	"strings"

	"gitlab.com/skillforge-2025.net/internal/core/services/language"
	"gitlab.com/skillforge-2025.net/internal/domain"
)

// cannedQuestions are the deterministic fallbacks keyed by difficulty
var cannedQuestions = map[string]domain.GeneratedQuestion{
	"easy": {
		Title: "Sum of Array Elements",
		Description: "Given an array of integers, return the sum of all elements.\n\n" +
			"Example:\nInput: [1, 2, 3, 4, 5]\nOutput: 15\n\n" +
			"Constraints:\n- 1 <= arr.length <= 1000\n- -1000 <= arr[i] <= 1000",
		TestCases: []domain.GeneratedTestCase{
			{Input: "[1, 2, 3, 4, 5]", ExpectedOutput: "15"},
			{Input: "[10, -5, 3]", ExpectedOutput: "8"},
		},
	},
	"medium": {
		Title: "Two Sum",
		Description: "Given an array of integers nums and an integer target, return indices of the " +
			"two numbers such that they add up to target.\n\n" +
			"You may assume that each input would have exactly one solution.\n\n" +
			"Example:\nInput: nums = [2,7,11,15], target = 9\nOutput: [0,1]\n" +
			"Explanation: Because nums[0] + nums[1] == 9, we return [0, 1].",
		TestCases: []domain.GeneratedTestCase{
			{Input: "[2,7,11,15], 9", ExpectedOutput: "[0,1]"},
			{Input: "[3,2,4], 6", ExpectedOutput: "[1,2]"},
		},
	},
	"hard": {
		Title: "Merge Intervals",
		Description: "Given an array of intervals where intervals[i] = [starti, endi], merge all " +
			"overlapping intervals.\n\n" +
			"Return an array of the non-overlapping intervals that cover all the intervals in the input.\n\n" +
			"Example:\nInput: [[1,3],[2,6],[8,10],[15,18]]\nOutput: [[1,6],[8,10],[15,18]]",
		TestCases: []domain.GeneratedTestCase{
			{Input: "[[1,3],[2,6],[8,10],[15,18]]", ExpectedOutput: "[[1,6],[8,10],[15,18]]"},
			{Input: "[[1,4],[4,5]]", ExpectedOutput: "[[1,5]]"},
		},
	},
}

// templateQuestion returns the canned question for the difficulty (medium
// when unknown) with starter code for the requested language
func templateQuestion(difficulty, lang string) *domain.GeneratedQuestion {
	q, ok := cannedQuestions[strings.ToLower(difficulty)]
	if !ok {
		q = cannedQuestions["medium"]
	}
	q.Language = lang
	q.StarterCode = language.StarterTemplate(lang)
	return &q
}
