// Package bank holds the static question catalog.
package bank

import "quiz-game/internal/domain"

// QuestionsFor returns the fixed question set for a difficulty.
// An unrecognized difficulty falls back to the Easy set rather than
// failing, so a caller with stale input still gets a playable quiz.
// The returned slice is a fresh copy on every call.
func QuestionsFor(d domain.Difficulty) []domain.Question {
	var src []domain.Question
	switch d {
	case domain.DifficultyEasy:
		src = easyQuestions
	case domain.DifficultyMedium:
		src = mediumQuestions
	case domain.DifficultyHard:
		src = hardQuestions
	default:
		src = easyQuestions
	}

	out := make([]domain.Question, len(src))
	copy(out, src)
	return out
}

var easyQuestions = []domain.Question{
	{Prompt: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, Answer: "4"},
	{Prompt: "What color is the sky?", Options: []string{"Blue", "Green", "Red", "Yellow"}, Answer: "Blue"},
	{Prompt: "What is the capital of the USA?", Options: []string{"New York", "Washington DC", "Los Angeles", "Chicago"}, Answer: "Washington DC"},
	{Prompt: "How many days are there in a week?", Options: []string{"5", "6", "7", "8"}, Answer: "7"},
	{Prompt: "Which animal barks?", Options: []string{"Cat", "Dog", "Cow", "Horse"}, Answer: "Dog"},
	{Prompt: "Which fruit is yellow and sour?", Options: []string{"Apple", "Banana", "Lemon", "Orange"}, Answer: "Lemon"},
	{Prompt: "How many legs does a spider have?", Options: []string{"6", "8", "10", "12"}, Answer: "8"},
	{Prompt: "What do bees produce?", Options: []string{"Milk", "Honey", "Wax", "Silk"}, Answer: "Honey"},
}

var mediumQuestions = []domain.Question{
	{Prompt: "What is the capital of France?", Options: []string{"Berlin", "Madrid", "Paris", "Rome"}, Answer: "Paris"},
	{Prompt: "Which planet is known as the Red Planet?", Options: []string{"Earth", "Venus", "Mars", "Jupiter"}, Answer: "Mars"},
	{Prompt: "What is the chemical symbol for water?", Options: []string{"O2", "CO2", "H2O", "NaCl"}, Answer: "H2O"},
	{Prompt: "Who painted the Mona Lisa?", Options: []string{"Van Gogh", "Picasso", "Da Vinci", "Michelangelo"}, Answer: "Da Vinci"},
	{Prompt: "What is the largest ocean on Earth?", Options: []string{"Atlantic", "Indian", "Pacific", "Arctic"}, Answer: "Pacific"},
	{Prompt: "What gas do plants absorb?", Options: []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"}, Answer: "Carbon Dioxide"},
	{Prompt: "How many continents are there?", Options: []string{"5", "6", "7", "8"}, Answer: "7"},
}

var hardQuestions = []domain.Question{
	{Prompt: "What is the square root of 144?", Options: []string{"10", "11", "12", "13"}, Answer: "12"},
	{Prompt: "Who developed general relativity?", Options: []string{"Newton", "Einstein", "Tesla", "Hawking"}, Answer: "Einstein"},
	{Prompt: "What is the chemical formula of table salt?", Options: []string{"NaCl", "KCl", "NaOH", "HCl"}, Answer: "NaCl"},
	{Prompt: "Which element has the atomic number 26?", Options: []string{"Iron", "Gold", "Silver", "Copper"}, Answer: "Iron"},
	{Prompt: "What is the name of the longest river in the world?", Options: []string{"Amazon", "Nile", "Yangtze", "Mississippi"}, Answer: "Nile"},
	{Prompt: "In which year did World War II end?", Options: []string{"1942", "1945", "1939", "1950"}, Answer: "1945"},
	{Prompt: "Who is known as the father of modern computers?", Options: []string{"Charles Babbage", "Alan Turing", "John Von Neumann", "Bill Gates"}, Answer: "Charles Babbage"},
}
