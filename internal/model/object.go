package model

import (
	"fmt"
	"time"
)

// Object is a named, movable, labelled thing in the scene.
type Object struct {
	Key       string    `json:"key"`
	Name      string    `json:"name" validate:"required,max=32"`
	Position  Vector    `json:"position"`
	Label     string    `json:"label,omitempty" validate:"max=256"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetKey sets the database key for this object.
func (o *Object) SetKey(key string) {
	o.Key = key
}

// GetKey returns the database key for this object.
func (o *Object) GetKey() string {
	return o.Key
}

// Touch stamps the object as modified now.
func (o *Object) Touch() {
	o.UpdatedAt = time.Now()
}

// GenerateObjectKey generates a database key for an object using its name.
func GenerateObjectKey(name string) string {
	return fmt.Sprintf("%s:%s", PrefixObject, name)
}

// NewObject creates a new object at the origin.
func NewObject(name string) *Object {
	now := time.Now()
	return &Object{
		Key:       GenerateObjectKey(name),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
