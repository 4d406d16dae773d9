package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/users"
)

// UserStore implements users.Repository on a bolt bucket keyed by email.
// Every mutation is a single bolt transaction, so there is no read-all
// write-all window to race on.
type UserStore struct {
	Driver *Driver
}

func (s *UserStore) Get(email string) (*users.User, error) {
	var user *users.User
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get([]byte(email))
		if data == nil {
			return nil
		}

		user = &users.User{}
		return json.Unmarshal(data, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserStore) Upsert(user *users.User) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(user.Email), data)
	})
}

func (s *UserStore) List() ([]*users.User, error) {
	var list []*users.User

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		c := bucket.Cursor()
		for email, data := c.First(); email != nil; email, data = c.Next() {
			var user users.User
			if err := json.Unmarshal(data, &user); err != nil {
				return err
			}
			list = append(list, &user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}
