package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaKey(t *testing.T) {
	key := mediaKey("projects", `C:\Users\me\My Shot (1).png`)
	assert.True(t, strings.HasPrefix(key, "projects/"))
	assert.True(t, strings.HasSuffix(key, "_My_Shot_1_.png"))

	assert.True(t, strings.HasSuffix(mediaKey("profile", "../.."), "_upload"))
}

func TestLocalMediaStore(t *testing.T) {
	root := t.TempDir()
	store := NewLocalMediaStore(root, "/media/")

	name, err := store.Save(context.Background(), "projects/thumbnails", "a.png", strings.NewReader("png"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "projects/thumbnails/"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
	assert.Equal(t, "/media/"+name, store.URL(name))

	other, err := store.Save(context.Background(), "projects/thumbnails", "a.png", strings.NewReader("x"), "")
	require.NoError(t, err)
	assert.NotEqual(t, name, other)
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func TestS3MediaStore(t *testing.T) {
	putter := &fakePutter{}
	store := NewS3MediaStore(putter, "bucket", "https://cdn.example.com/")

	name, err := store.Save(context.Background(), "resume", "cv.pdf", strings.NewReader("pdf"), "application/pdf")
	require.NoError(t, err)
	require.NotNil(t, putter.input)
	assert.Equal(t, "bucket", *putter.input.Bucket)
	assert.Equal(t, name, *putter.input.Key)
	assert.Equal(t, "application/pdf", *putter.input.ContentType)
	assert.Equal(t, "pdf", putter.body)
	assert.Equal(t, "https://cdn.example.com/"+name, store.URL(name))
}
