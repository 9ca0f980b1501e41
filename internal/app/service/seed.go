package service

import (
	"context"
	"fmt"
	"log"

	"code_arena/internal/domain/model"
	"code_arena/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// SeedQuestions inserts the sample catalog on first boot. Runs only when the
// questions table is empty, so restarts are no-ops.
func SeedQuestions(ctx context.Context, questionRepo repository.QuestionRepository) error {
	count, err := questionRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, q := range sampleQuestions() {
		q.ID = uuid.NewString()
		q.Slug = slug.Make(q.Title)
		if err := questionRepo.Create(ctx, &q); err != nil {
			return fmt.Errorf("failed to seed question %q: %w", q.Title, err)
		}
	}
	log.Printf("Seeded %d sample questions", len(sampleQuestions()))
	return nil
}

func sampleQuestions() []model.Question {
	return []model.Question{
		{
			Title:       "Two Sum",
			Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
			Difficulty:  model.DifficultyEasy,
			Language:    "JavaScript",
			Topic:       "Arrays",
			StarterCode: "function twoSum(nums, target) {\n    // Your code here\n}",
			Solution:    "function twoSum(nums, target) {\n    const map = new Map();\n    for (let i = 0; i < nums.length; i++) {\n        const complement = target - nums[i];\n        if (map.has(complement)) {\n            return [map.get(complement), i];\n        }\n        map.set(nums[i], i);\n    }\n    return [];\n}",
			TestCases:   `[{"input": "[2,7,11,15], 9", "expected": "[0,1]"}, {"input": "[3,2,4], 6", "expected": "[1,2]"}, {"input": "[3,3], 6", "expected": "[0,1]"}]`,
			Points:      10,
		},
		{
			Title:       "Reverse String",
			Description: "Write a function that reverses a string. The input string is given as an array of characters s.",
			Difficulty:  model.DifficultyEasy,
			Language:    "JavaScript",
			Topic:       "Strings",
			StarterCode: "function reverseString(s) {\n    // Your code here\n}",
			Solution:    "function reverseString(s) {\n    return s.reverse();\n}",
			TestCases:   `[{"input": "['h','e','l','l','o']", "expected": "['o','l','l','e','h']"}, {"input": "['H','a','n','n','a','h']", "expected": "['h','a','n','n','a','H']"}]`,
			Points:      5,
		},
		{
			Title:       "Valid Parentheses",
			Description: "Given a string s containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid.",
			Difficulty:  model.DifficultyMedium,
			Language:    "JavaScript",
			Topic:       "Stack",
			StarterCode: "function isValid(s) {\n    // Your code here\n}",
			Solution:    "function isValid(s) {\n    const stack = [];\n    const map = { ')': '(', '}': '{', ']': '[' };\n    for (let char of s) {\n        if (char in map) {\n            if (stack.pop() !== map[char]) return false;\n        } else {\n            stack.push(char);\n        }\n    }\n    return stack.length === 0;\n}",
			TestCases:   `[{"input": "()", "expected": "true"}, {"input": "()[]{}", "expected": "true"}, {"input": "(]", "expected": "false"}]`,
			Points:      20,
		},
	}
}
