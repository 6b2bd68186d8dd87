package dataset

import (
	"math/rand"

	"trainset/internal/models"
)

// minValidationSize is the floor on the validation partition.
const minValidationSize = 10

// ValidationSize returns how many examples go into the validation
// partition: max(10, total/10), clamped to the total. With fewer than ten
// examples the validation set takes everything.
func ValidationSize(total int) int {
	size := total / 10
	if size < minValidationSize {
		size = minValidationSize
	}
	if size > total {
		size = total
	}
	return size
}

// Shuffle returns a uniformly permuted copy of examples using the provided
// source. The caller owns the source so runs can be made reproducible by
// seeding it; the input slice is not modified.
func Shuffle(examples []models.TrainingExample, rng *rand.Rand) []models.TrainingExample {
	shuffled := make([]models.TrainingExample, len(examples))
	copy(shuffled, examples)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Split carves the validation partition off the front of an already
// shuffled sequence; the remainder is the training partition. Both results
// alias the input.
func Split(shuffled []models.TrainingExample) (train, val []models.TrainingExample) {
	size := ValidationSize(len(shuffled))
	return shuffled[size:], shuffled[:size]
}
