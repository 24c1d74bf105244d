package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	Create(req *CreateGroupRequest) (*GroupResponse, error)
	List() ([]GroupResponse, error)
	Get(key string) (*GroupResponse, error)
	Update(key string, req *UpdateGroupRequest) (*GroupResponse, error)
	Delete(key string) (*GroupResponse, error)
}

// SheetMusicServiceInterface defines the interface for sheet music service
type SheetMusicServiceInterface interface {
	Create(req *CreateSheetMusicRequest) (*SheetMusicResponse, error)
	List(params *SheetMusicListParams) ([]SheetMusicResponse, error)
	Get(key string) (*SheetMusicResponse, error)
	Update(key string, req *UpdateSheetMusicRequest) (*SheetMusicResponse, error)
	Delete(key string) (*SheetMusicResponse, error)
}

// UserServiceInterface defines the interface for the user manager
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	CreateSuperuser(req *CreateUserRequest) (*UserResponse, error)
	GetByEmail(email string) (*UserResponse, error)
}
