package controllers

// gradeQuiz scores a submitted answer set against canonical data. points
// maps question id to point value, correctOptions maps question id to the
// id of its correct option, answers maps question id to the option the
// student chose. Points are awarded only on an exact option-id match.
func gradeQuiz(points map[string]int, correctOptions map[string]string, answers map[string]string) (score, maxScore int) {
	for questionID, pts := range points {
		maxScore += pts
		correctID, ok := correctOptions[questionID]
		if !ok {
			continue
		}
		if answers[questionID] == correctID {
			score += pts
		}
	}
	return score, maxScore
}

// percentage returns score/maxScore as a whole percent, rounded down.
// A quiz with no points on offer grades to 0, not an error.
func percentage(score, maxScore int) int {
	if maxScore == 0 {
		return 0
	}
	return score * 100 / maxScore
}
