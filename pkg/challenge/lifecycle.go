package challenge

import "Zero-Desperdicio/domain"

// MaxStoredChallenges caps the stored history, newest first.
const MaxStoredChallenges = 20

func Prepend(challenges []domain.Challenge, c domain.Challenge) []domain.Challenge {
	out := make([]domain.Challenge, 0, len(challenges)+1)
	out = append(out, c)
	out = append(out, challenges...)
	if len(out) > MaxStoredChallenges {
		out = out[:MaxStoredChallenges]
	}
	return out
}

// Complete marks the challenge with id as completed in place and adds its
// medal to medals. ok is false when the challenge is unknown or already
// completed; awarded is nil when the medal was already owned.
func Complete(challenges []domain.Challenge, medals []string, id string) (updatedMedals []string, awarded *string, ok bool) {
	for i := range challenges {
		c := &challenges[i]
		if c.ID != id {
			continue
		}
		if c.IsCompleted {
			return medals, nil, false
		}
		c.IsCompleted = true

		for _, m := range medals {
			if m == c.Medal {
				return medals, nil, true
			}
		}
		medal := c.Medal
		return append(medals, medal), &medal, true
	}
	return medals, nil, false
}

func Active(challenges []domain.Challenge) []domain.Challenge {
	active := make([]domain.Challenge, 0, len(challenges))
	for _, c := range challenges {
		if !c.IsCompleted {
			active = append(active, c)
		}
	}
	return active
}
