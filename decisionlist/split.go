package decisionlist

import "math/rand"

// splitRows deterministically shuffles rows with a seeded RNG and splits
// them into train/validate by fraction, which is the fraction held out
// for validation.
func splitRows(rows []int, fraction float64, rng *rand.Rand) (train, validate []int) {
	shuffled := append([]int(nil), rows...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	nValidate := int(float64(len(shuffled)) * fraction)
	validate = append([]int(nil), shuffled[:nValidate]...)
	train = append([]int(nil), shuffled[nValidate:]...)
	return train, validate
}
