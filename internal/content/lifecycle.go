// Package content implements the role-gated content lifecycle shared by all
// content categories: ordered list fetch, create with an optional file
// upload, and delete with best-effort storage cleanup. Each category plugs
// in through a Descriptor instead of repeating the shape by hand.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"godesa/internal/storagepath"
)

// ErrValidation marks errors caught before any backend call.
var ErrValidation = errors.New("validasi gagal")

// ObjectStorage is the slice of the storage bucket the lifecycle needs.
type ObjectStorage interface {
	Upload(ctx context.Context, path, contentType string, content io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

// Store is the row store for one content table.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id string) error
}

// File is an uploaded file attached to a create or update.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// Descriptor parameterizes the lifecycle for one content category.
// Categories without media leave the ObjectURL accessors nil.
type Descriptor[T any] struct {
	Name        string // category name, used in logs
	Folder      string // storage folder inside the bucket
	FilePrefix  string // object name prefix
	RequireFile bool

	Validate     func(item *T) error
	ObjectURL    func(item *T) string
	SetObjectURL func(item *T, url string)

	// CarryMedia copies every stored media field from the loaded row onto
	// the replacement when an update carries no new file. Categories whose
	// media is a single URL leave it nil and get the URL carried over.
	CarryMedia func(item, existing *T)
}

type Controller[T any] struct {
	desc    Descriptor[T]
	store   Store[T]
	storage ObjectStorage
	log     *zap.Logger
}

func NewController[T any](desc Descriptor[T], store Store[T], storage ObjectStorage, log *zap.Logger) *Controller[T] {
	return &Controller[T]{desc: desc, store: store, storage: storage, log: log}
}

// List returns all rows of the category in its descriptor order.
func (c *Controller[T]) List(ctx context.Context) ([]T, error) {
	items, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.desc.Name, err)
	}
	return items, nil
}

func (c *Controller[T]) Get(ctx context.Context, id string) (*T, error) {
	return c.store.Get(ctx, id)
}

// Create validates the item, uploads the attached file when present and
// inserts the row referencing the uploaded object's public URL. An upload
// failure aborts the whole create; an insert failure after a successful
// upload leaves the object orphaned.
func (c *Controller[T]) Create(ctx context.Context, item *T, file *File) error {
	if c.desc.Validate != nil {
		if err := c.desc.Validate(item); err != nil {
			return err
		}
	}
	if file == nil && c.desc.RequireFile {
		return fmt.Errorf("%w: file wajib diunggah", ErrValidation)
	}

	if file != nil && c.desc.SetObjectURL != nil {
		url, err := c.upload(ctx, file)
		if err != nil {
			return err
		}
		c.desc.SetObjectURL(item, url)
	}

	if err := c.store.Insert(ctx, item); err != nil {
		return fmt.Errorf("insert %s: %w", c.desc.Name, err)
	}
	return nil
}

// Update replaces the stored row. With a new file attached the previous
// object is removed best-effort and the URL repointed; without one the
// stored media fields are carried over from the loaded row.
func (c *Controller[T]) Update(ctx context.Context, item *T, id string, file *File) error {
	if c.desc.Validate != nil {
		if err := c.desc.Validate(item); err != nil {
			return err
		}
	}

	existing, err := c.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.desc.Name, err)
	}

	if c.desc.SetObjectURL != nil {
		if file != nil {
			url, err := c.upload(ctx, file)
			if err != nil {
				return err
			}
			c.removeObject(ctx, c.desc.ObjectURL(existing))
			c.desc.SetObjectURL(item, url)
		} else if c.desc.CarryMedia != nil {
			c.desc.CarryMedia(item, existing)
		} else if url := c.desc.ObjectURL(existing); url != "" {
			// a row without media keeps its null URL
			c.desc.SetObjectURL(item, url)
		}
	}

	if err := c.store.Update(ctx, item); err != nil {
		return fmt.Errorf("update %s: %w", c.desc.Name, err)
	}
	return nil
}

// Delete removes the row's storage object best-effort, then the row itself.
// A storage failure never blocks the row deletion; a row deletion failure
// surfaces to the caller.
func (c *Controller[T]) Delete(ctx context.Context, id string) error {
	existing, err := c.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.desc.Name, err)
	}

	if c.desc.ObjectURL != nil {
		c.removeObject(ctx, c.desc.ObjectURL(existing))
	}

	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", c.desc.Name, err)
	}
	return nil
}

func (c *Controller[T]) upload(ctx context.Context, file *File) (string, error) {
	path := storagepath.ObjectPath(c.desc.Folder, storagepath.ObjectName(c.desc.FilePrefix, file.Name))
	url, err := c.storage.Upload(ctx, path, file.ContentType, file.Content)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", c.desc.Name, err)
	}
	return url, nil
}

func (c *Controller[T]) removeObject(ctx context.Context, url string) {
	if url == "" {
		return
	}
	path := storagepath.FromURL(c.desc.Folder, url)
	if err := c.storage.Remove(ctx, path); err != nil {
		c.log.Warn("storage cleanup failed",
			zap.String("category", c.desc.Name),
			zap.String("path", path),
			zap.Error(err))
	}
}
