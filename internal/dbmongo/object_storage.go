package dbmongo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Storage bucket names, one GridFS bucket per logical storage bucket.
const (
	BucketGaleri      = "galeridesa"
	BucketProdukHukum = "produk-hukum"
	BucketPetaDesa    = "peta-desa"
)

// Bucket is a path-addressed object store on top of a GridFS bucket.
// Objects are stored under "<folder>/<filename>" paths and referenced
// by the public URL returned from Upload.
type Bucket struct {
	name    string
	gridFS  *gridfs.Bucket
	baseURL string
}

func NewBucket(mc *MongoClient, name, baseURL string) (*Bucket, error) {
	bucket, err := gridfs.NewBucket(mc.Database, options.GridFSBucket().SetName(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create GridFS bucket %s: %w", name, err)
	}
	return &Bucket{name: name, gridFS: bucket, baseURL: baseURL}, nil
}

func (b *Bucket) Name() string { return b.name }

// Upload stores the object under path and returns its public URL.
func (b *Bucket) Upload(ctx context.Context, path, contentType string, content io.Reader) (string, error) {
	metadata := bson.M{
		"content_type": contentType,
		"uploaded_at":  time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := b.gridFS.OpenUploadStream(path, opts)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	if _, err := io.Copy(stream, content); err != nil {
		// Abort discards the chunks written so far, a failed upload
		// must not commit a partial object at the path
		stream.Abort()
		return "", fmt.Errorf("file copy failed: %w", err)
	}

	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return b.PublicURL(path), nil
}

// Open returns a reader over the object at path along with its length.
func (b *Bucket) Open(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	stream, err := b.gridFS.OpenDownloadStreamByName(path)
	if err != nil {
		return nil, 0, fmt.Errorf("download failed: %w", err)
	}
	return stream, stream.GetFile().Length, nil
}

// Remove deletes every revision stored under path. Removing a path that
// holds no object is a no-op.
func (b *Bucket) Remove(ctx context.Context, path string) error {
	cursor, err := b.gridFS.Find(bson.M{"filename": path})
	if err != nil {
		return fmt.Errorf("storage lookup failed: %w", err)
	}
	defer cursor.Close(ctx)

	var file struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	for cursor.Next(ctx) {
		if err := cursor.Decode(&file); err != nil {
			return fmt.Errorf("storage lookup failed: %w", err)
		}
		if err := b.gridFS.Delete(file.ID); err != nil {
			return fmt.Errorf("storage delete failed: %w", err)
		}
	}
	return cursor.Err()
}

// PublicURL returns the URL the object at path is served from.
func (b *Bucket) PublicURL(path string) string {
	return fmt.Sprintf("%s/media/%s/%s", b.baseURL, b.name, path)
}

// Storage bundles the named buckets the content categories upload to.
type Storage struct {
	Galeri      *Bucket
	ProdukHukum *Bucket
	PetaDesa    *Bucket
}

func NewStorage(mc *MongoClient, baseURL string) (*Storage, error) {
	galeri, err := NewBucket(mc, BucketGaleri, baseURL)
	if err != nil {
		return nil, err
	}
	produkHukum, err := NewBucket(mc, BucketProdukHukum, baseURL)
	if err != nil {
		return nil, err
	}
	petaDesa, err := NewBucket(mc, BucketPetaDesa, baseURL)
	if err != nil {
		return nil, err
	}
	return &Storage{Galeri: galeri, ProdukHukum: produkHukum, PetaDesa: petaDesa}, nil
}

// Bucket returns the bucket with the given name, nil when unknown.
func (s *Storage) Bucket(name string) *Bucket {
	switch name {
	case BucketGaleri:
		return s.Galeri
	case BucketProdukHukum:
		return s.ProdukHukum
	case BucketPetaDesa:
		return s.PetaDesa
	}
	return nil
}
