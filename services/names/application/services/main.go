package services

import (
	"github.com/ghuser/namesort/pkg/app"
	"github.com/ghuser/namesort/services/names/infrastructure/console"
	"github.com/ghuser/namesort/services/names/infrastructure/persistence/textfile"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Sort *SortService
}

// New wires all names application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	store := textfile.NewLineStore()
	return &Services{
		Sort: NewSortService(store, store, console.NewLineReader(a.Stdin), a.Stdout, a.Logger),
	}
}
