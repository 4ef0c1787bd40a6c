package filter

import (
	"fmt"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
)

// Filters register themselves from init() in their own files.
var filters = make(map[classification.Classification]CanBeInstanced)

func findByClassification(cls classification.Classification) (CanBeInstanced, error) {
	f, exists := filters[cls]
	if !exists {
		return nil, fmt.Errorf("no filter registered for %s", cls)
	}
	return f, nil
}

func mustRegister(cls classification.Classification, f CanBeInstanced) {
	if _, exists := filters[cls]; exists {
		panic(fmt.Errorf("filter already registered for %s", cls))
	}
	filters[cls] = f
}
