package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToWebPShrinksLongestEdge(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngOf(t, 400, 200)), 100)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestToWebPKeepsSmallImages(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngOf(t, 40, 30)), 100)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
}

func TestToWebPRejectsGarbage(t *testing.T) {
	_, err := ToWebP(strings.NewReader("not an image"), 100)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

type fakeS3 struct {
	in  *s3.PutObjectInput
	err error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	return &s3.PutObjectOutput{}, f.err
}

func TestS3UploaderPutsObject(t *testing.T) {
	fake := &fakeS3{}
	u := NewS3Uploader(S3Config{Bucket: "media", Region: "us-east-1", PublicURL: "https://cdn.example.com/"})
	u.client = fake

	url, err := u.Upload(context.Background(), "shops/1/abc.webp", []byte("data"), ContentTypeWebP)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/shops/1/abc.webp", url)

	require.NotNil(t, fake.in)
	assert.Equal(t, "media", *fake.in.Bucket)
	assert.Equal(t, ContentTypeWebP, *fake.in.ContentType)
	body, _ := io.ReadAll(fake.in.Body)
	assert.Equal(t, "data", string(body))

	fake.err = errors.New("boom")
	_, err = u.Upload(context.Background(), "k", nil, ContentTypeWebP)
	assert.Error(t, err)
}

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "http://minio:9000/media", publicBase(S3Config{Bucket: "media", Endpoint: "http://minio:9000/"}))
	assert.Equal(t, "https://media.s3.sa-east-1.amazonaws.com", publicBase(S3Config{Bucket: "media", Region: "sa-east-1"}))
}
