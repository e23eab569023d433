package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocument = `{
    "video_upload": {
        "bucket_region": "eu-west-1",
        "identity_pool_id": "eu-west-1:8920432b-cc7a-415b-a8aa-c5549432d049",
        "upload_bucket_name": "cp-derby-bucket",
        "s3_upload_startkey": "upload"
    }
}`

func TestParse(t *testing.T) {
	t.Run("fields_are_copied_verbatim", func(t *testing.T) {
		cfg, err := Parse([]byte(validDocument))
		require.NoError(t, err)

		assert.Equal(t, "eu-west-1", cfg.VideoUpload.BucketRegion)
		assert.Equal(t, "eu-west-1:8920432b-cc7a-415b-a8aa-c5549432d049", cfg.VideoUpload.IdentityPoolID)
		assert.Equal(t, "cp-derby-bucket", cfg.VideoUpload.BucketName)
		assert.Equal(t, "upload", cfg.VideoUpload.UploadKeyPrefix)
	})

	t.Run("prefix_is_not_transformed", func(t *testing.T) {
		doc := `{"video_upload": {
			"bucket_region": "eu-west-1",
			"identity_pool_id": "pool",
			"upload_bucket_name": "bucket",
			"s3_upload_startkey": " up load/ "
		}}`

		cfg, err := Parse([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, " up load/ ", cfg.VideoUpload.UploadKeyPrefix)
	})

	t.Run("parsing_twice_is_deep_equal", func(t *testing.T) {
		first, err := Parse([]byte(validDocument))
		require.NoError(t, err)
		second, err := Parse([]byte(validDocument))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(validDocument))
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.GetLogLevel())
		assert.Equal(t, "json", cfg.GetLogFormat())
		assert.Equal(t, "s3", cfg.VideoUpload.GetBackend())
		assert.False(t, cfg.VideoUpload.HasStaticCredentials())
	})

	t.Run("optional_fields", func(t *testing.T) {
		doc := `{
			"log_level": "debug",
			"log_format": "console",
			"video_upload": {
				"bucket_region": "us-east-1",
				"identity_pool_id": "pool",
				"upload_bucket_name": "bucket",
				"s3_upload_startkey": "upload",
				"endpoint": "http://localhost:4566",
				"force_path_style": true,
				"access_key_id": "test",
				"secret_access_key": "test"
			}
		}`

		cfg, err := Parse([]byte(doc))
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.GetLogLevel())
		assert.Equal(t, "console", cfg.GetLogFormat())
		assert.Equal(t, "http://localhost:4566", cfg.VideoUpload.Endpoint)
		assert.True(t, cfg.VideoUpload.ForcePathStyle)
		assert.True(t, cfg.VideoUpload.HasStaticCredentials())
	})

	t.Run("static_credentials_without_identity_pool", func(t *testing.T) {
		doc := `{"video_upload": {
			"bucket_region": "us-east-1",
			"upload_bucket_name": "bucket",
			"s3_upload_startkey": "upload",
			"endpoint": "http://localhost:4566",
			"access_key_id": "test",
			"secret_access_key": "test"
		}}`

		cfg, err := Parse([]byte(doc))
		require.NoError(t, err)
		assert.Empty(t, cfg.VideoUpload.IdentityPoolID)
		assert.True(t, cfg.VideoUpload.HasStaticCredentials())
	})

	t.Run("local_backend_without_identity_pool", func(t *testing.T) {
		doc := `{"video_upload": {
			"bucket_region": "local",
			"upload_bucket_name": "bucket",
			"s3_upload_startkey": "upload",
			"backend": "local",
			"local_path": "/var/lib/videos"
		}}`

		cfg, err := Parse([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, "local", cfg.VideoUpload.GetBackend())
		assert.Empty(t, cfg.VideoUpload.IdentityPoolID)
	})
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "missing video_upload section",
			doc:  `{"log_level": "info"}`,
		},
		{
			name: "missing bucket name",
			doc:  `{"video_upload": {"bucket_region": "eu-west-1", "identity_pool_id": "pool", "s3_upload_startkey": "upload"}}`,
		},
		{
			name: "empty region",
			doc:  `{"video_upload": {"bucket_region": "", "identity_pool_id": "pool", "upload_bucket_name": "b", "s3_upload_startkey": "upload"}}`,
		},
		{
			name: "unknown backend",
			doc:  `{"video_upload": {"bucket_region": "r", "identity_pool_id": "pool", "upload_bucket_name": "b", "s3_upload_startkey": "u", "backend": "ftp"}}`,
		},
		{
			name: "no identity pool and no credentials",
			doc:  `{"video_upload": {"bucket_region": "r", "upload_bucket_name": "b", "s3_upload_startkey": "u"}}`,
		},
		{
			name: "access key without secret",
			doc:  `{"video_upload": {"bucket_region": "r", "upload_bucket_name": "b", "s3_upload_startkey": "u", "access_key_id": "test"}}`,
		},
		{
			name: "empty static credentials",
			doc:  `{"video_upload": {"bucket_region": "r", "upload_bucket_name": "b", "s3_upload_startkey": "u", "access_key_id": "", "secret_access_key": ""}}`,
		},
		{
			name: "explicit s3 backend without identity pool",
			doc:  `{"video_upload": {"bucket_region": "r", "upload_bucket_name": "b", "s3_upload_startkey": "u", "backend": "s3"}}`,
		},
		{
			name: "bad log level",
			doc:  `{"log_level": "trace", "video_upload": {"bucket_region": "r", "identity_pool_id": "pool", "upload_bucket_name": "b", "s3_upload_startkey": "u"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, cfg)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Errors)
		})
	}

	t.Run("not json", func(t *testing.T) {
		_, err := Parse([]byte("<html></html>"))
		assert.Error(t, err)
	})
}
