package services

import (
	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
	"github.com/dayboard/dayboard_backend/internal/platform/config"
)

// Repositories bundles the persistence dependencies needed to build the
// service container.
type Repositories struct {
	User        portsrepo.UserRepository
	ReadingList portsrepo.ReadingListRepository
	Task        portsrepo.TaskRepository
	Movie       portsrepo.MovieListRepository
	QuickNote   portsrepo.QuickNoteRepository
	Revoker     portsrepo.TokenRevoker
}

// NewServiceContainer wires every application service.
func NewServiceContainer(cfg *config.Config, repos Repositories, mailer portssvc.Mailer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(cfg, repos.User, repos.Revoker, mailer),
		User:        NewUserService(repos.User),
		ReadingList: NewReadingListService(repos.ReadingList),
		Task:        NewTaskService(repos.Task),
		Movie:       NewMovieListService(repos.Movie),
		QuickNote:   NewQuickNoteService(repos.QuickNote),
	}
}
