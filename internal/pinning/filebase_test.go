package pinning

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"landapi/internal/config"
)

type mockObjectAPI struct {
	mock.Mock
}

func (m *mockObjectAPI) PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *mockObjectAPI) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Get(0).(minio.ObjectInfo), args.Error(1)
}

func TestNewFilebase(t *testing.T) {
	valid := config.FilebaseConfig{Endpoint: "s3.filebase.com", AccessKey: "ak", SecretKey: "sk", Bucket: "lands", UseSSL: true}

	f, err := NewFilebase(valid)
	require.NoError(t, err)
	assert.Equal(t, "lands", f.bucket)

	for name, mutate := range map[string]func(c *config.FilebaseConfig){
		"missing endpoint": func(c *config.FilebaseConfig) { c.Endpoint = "" },
		"missing key":      func(c *config.FilebaseConfig) { c.AccessKey = "" },
		"missing bucket":   func(c *config.FilebaseConfig) { c.Bucket = "" },
	} {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			_, err := NewFilebase(c)
			assert.Error(t, err)
		})
	}
}

func TestFilebase_Pin(t *testing.T) {
	ctx := context.Background()
	data := []byte("deed contents")
	keyMatcher := mock.MatchedBy(func(key string) bool { return strings.HasSuffix(key, "-deed.pdf") })

	t.Run("success", func(t *testing.T) {
		api := new(mockObjectAPI)
		f := &Filebase{api: api, bucket: "lands"}

		api.On("PutObject", ctx, "lands", keyMatcher, mock.MatchedBy(func(r *bytes.Reader) bool {
			b, _ := io.ReadAll(r)
			_, _ = r.Seek(0, io.SeekStart)
			return bytes.Equal(b, data)
		}), int64(len(data)), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
			return o.ContentType == "application/pdf" && o.UserMetadata["original-filename"] == "deed.pdf"
		})).Return(minio.UploadInfo{}, nil)
		api.On("StatObject", ctx, "lands", keyMatcher, mock.Anything).
			Return(minio.ObjectInfo{UserMetadata: minio.StringMap{"Cid": testCID}}, nil)

		c, err := f.Pin(ctx, data, "deed.pdf", "application/pdf")

		require.NoError(t, err)
		assert.Equal(t, testCID, c)
		api.AssertExpectations(t)
	})

	t.Run("put error keeps only the s3 code", func(t *testing.T) {
		api := new(mockObjectAPI)
		f := &Filebase{api: api, bucket: "lands"}

		api.On("PutObject", ctx, "lands", keyMatcher, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, minio.ErrorResponse{Code: "AccessDenied", Message: "signature mismatch for key", StatusCode: http.StatusForbidden})

		_, err := f.Pin(ctx, data, "deed.pdf", "application/pdf")

		var pe *Error
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "put", pe.Op)
		assert.Equal(t, http.StatusForbidden, pe.Status)
		assert.Contains(t, err.Error(), "AccessDenied")
		assert.NotContains(t, err.Error(), "signature mismatch")
		api.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing cid metadata", func(t *testing.T) {
		api := new(mockObjectAPI)
		f := &Filebase{api: api, bucket: "lands"}

		api.On("PutObject", ctx, "lands", keyMatcher, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)
		api.On("StatObject", ctx, "lands", keyMatcher, mock.Anything).
			Return(minio.ObjectInfo{}, nil)

		_, err := f.Pin(ctx, data, "deed.pdf", "application/pdf")

		var pe *Error
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "stat", pe.Op)
	})
}

func TestCidFromInfo(t *testing.T) {
	assert.Equal(t, "a", cidFromInfo(minio.ObjectInfo{UserMetadata: minio.StringMap{"Cid": "a"}}))
	assert.Equal(t, "b", cidFromInfo(minio.ObjectInfo{UserMetadata: minio.StringMap{"cid": "b"}}))
	assert.Equal(t, "c", cidFromInfo(minio.ObjectInfo{Metadata: http.Header{"X-Amz-Meta-Cid": []string{"c"}}}))
	assert.Empty(t, cidFromInfo(minio.ObjectInfo{}))
}

func TestObjectKey(t *testing.T) {
	k1 := objectKey("scans/deed.pdf")
	k2 := objectKey("scans/deed.pdf")
	assert.True(t, strings.HasSuffix(k1, "-deed.pdf"))
	assert.NotEqual(t, k1, k2)
	assert.True(t, strings.HasSuffix(objectKey(""), "-file"))
}
