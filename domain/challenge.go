package domain

import "errors"

var (
	MessageSuccessGetChallenges     = "active challenges retrieved successfully"
	MessageSuccessScanChallenges    = "challenge scan finished"
	MessageSuccessCompleteChallenge = "challenge completed successfully"
	MessageSuccessGetMedals         = "medals retrieved successfully"

	MessageFailedGetChallenges     = "failed to retrieve challenges"
	MessageFailedScanChallenges    = "failed to scan for challenges"
	MessageFailedCompleteChallenge = "failed to complete challenge"
	MessageFailedGetMedals         = "failed to retrieve medals"

	ErrChallengeNotFound = errors.New("challenge not found or already completed")
)

type (
	Challenge struct {
		ID               string  `json:"id"`
		ItemName         string  `json:"itemName"`
		Quantity         float64 `json:"quantity"`
		DaysLeft         int     `json:"daysLeft"`
		RecipeSuggestion string  `json:"recipeSuggestion"`
		Medal            string  `json:"medal"`
		IsCompleted      bool    `json:"isCompleted"`
	}

	ScanChallengeResponse struct {
		Challenge *Challenge `json:"challenge"`
	}

	CompleteChallengeResponse struct {
		ChallengeID string  `json:"challenge_id"`
		Medal       *string `json:"medal"`
	}
)
