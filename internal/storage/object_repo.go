package storage

import (
	errs "github.com/manav03panchal/commandkit/internal/errors"
	"github.com/manav03panchal/commandkit/internal/model"
)

// ObjectRepo provides operations for scene Object entities.
type ObjectRepo struct {
	db *DB
}

// NewObjectRepo creates a new object repository.
func NewObjectRepo(db *DB) *ObjectRepo {
	return &ObjectRepo{db: db}
}

// Create stores a new object. It fails with ErrObjectExists if the name is taken.
func (r *ObjectRepo) Create(obj *model.Object) error {
	obj.Key = model.GenerateObjectKey(obj.Name)
	exists, err := r.db.Exists(obj.Key)
	if err != nil {
		return errs.Wrapf(err, "check object %q", obj.Name)
	}
	if exists {
		return errs.InvalidValue(errs.ErrObjectExists, "object", obj.Name)
	}
	return r.db.Set(obj)
}

// Get retrieves an object by name.
func (r *ObjectRepo) Get(name string) (*model.Object, error) {
	obj := &model.Object{}
	if err := r.db.Get(model.GenerateObjectKey(name), obj); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, errs.InvalidValue(errs.ErrObjectNotFound, "object", name)
		}
		return nil, errs.Wrapf(err, "load object %q", name)
	}
	return obj, nil
}

// GetOrCreate retrieves an object by name, creating it at the origin if it
// doesn't exist. This operation is atomic.
func (r *ObjectRepo) GetOrCreate(name string) (*model.Object, bool, error) {
	key := model.GenerateObjectKey(name)
	existing := &model.Object{}

	result, created, err := r.db.GetOrCreate(key, existing, func() model.Model {
		return model.NewObject(name)
	})
	if err != nil {
		return nil, false, errs.Wrapf(err, "load object %q", name)
	}

	return result.(*model.Object), created, nil
}

// Update saves an existing object.
func (r *ObjectRepo) Update(obj *model.Object) error {
	obj.Touch()
	return r.db.Set(obj)
}

// Delete removes an object by name.
func (r *ObjectRepo) Delete(name string) error {
	exists, err := r.Exists(name)
	if err != nil {
		return err
	}
	if !exists {
		return errs.InvalidValue(errs.ErrObjectNotFound, "object", name)
	}
	return r.db.Delete(model.GenerateObjectKey(name))
}

// List retrieves all objects ordered by name.
func (r *ObjectRepo) List() ([]*model.Object, error) {
	return GetAllByPrefix(r.db, model.PrefixObject+":", func() *model.Object {
		return &model.Object{}
	})
}

// Exists checks if an object exists by name.
func (r *ObjectRepo) Exists(name string) (bool, error) {
	return r.db.Exists(model.GenerateObjectKey(name))
}
