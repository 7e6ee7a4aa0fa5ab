package user

import (
	"context"
	"time"

	"pilmart-be/internal/store"
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	UpdateProfile(ctx context.Context, id int, params UpdateProfileParams) (*User, error)
}

type repository struct {
	users *store.Collection[User]
}

func NewRepository(users *store.Collection[User]) Repository {
	return &repository{users: users}
}

// Create appends a new user. The phone uniqueness check runs inside the
// collection's writer critical section so two registrations cannot race.
func (r *repository) Create(ctx context.Context, u User) (User, error) {
	err := r.users.Update(func(users []User) ([]User, error) {
		maxID := 0
		for _, existing := range users {
			if existing.Phone == u.Phone {
				return nil, ErrPhoneExists
			}
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}

		u.ID = maxID + 1
		u.CreatedAt = time.Now().UTC()
		return append(users, u), nil
	})
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	users, err := r.users.Load()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *repository) FindByPhone(ctx context.Context, phone string) (*User, error) {
	users, err := r.users.Load()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Phone == phone {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *repository) UpdateProfile(ctx context.Context, id int, params UpdateProfileParams) (*User, error) {
	var updated User

	err := r.users.Update(func(users []User) ([]User, error) {
		for i := range users {
			if users[i].ID != id {
				continue
			}
			users[i].Name = params.Name
			users[i].Phone = params.Phone
			users[i].Address = params.Address
			updated = users[i]
			return users, nil
		}
		return nil, ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
