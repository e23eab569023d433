package config

// VideoUpload holds the settings of the upload target
type VideoUpload struct {
	BucketRegion    string `json:"bucket_region"`
	IdentityPoolID  string `json:"identity_pool_id"`
	BucketName      string `json:"upload_bucket_name"`
	UploadKeyPrefix string `json:"s3_upload_startkey"`

	Backend         string `json:"backend,omitempty"`           // s3, local (default: s3)
	LocalPath       string `json:"local_path,omitempty"`        // target directory for the local backend
	Endpoint        string `json:"endpoint,omitempty"`          // optional: S3-compatible endpoint
	ForcePathStyle  bool   `json:"force_path_style,omitempty"`  // for S3-compatible endpoints
	AccessKeyID     string `json:"access_key_id,omitempty"`     // optional: replaces the identity pool
	SecretAccessKey string `json:"secret_access_key,omitempty"`
}

// Config is the root configuration structure
type Config struct {
	VideoUpload VideoUpload `json:"video_upload"`
	LogLevel    string      `json:"log_level,omitempty"`  // debug, info, warn, error (default: info)
	LogFormat   string      `json:"log_format,omitempty"` // json, console (default: json)
}

// GetBackend returns the storage backend type (defaults to s3)
func (v *VideoUpload) GetBackend() string {
	if v.Backend != "" {
		return v.Backend
	}
	return "s3"
}

// HasStaticCredentials reports whether explicit keys take precedence over the identity pool
func (v *VideoUpload) HasStaticCredentials() bool {
	return v.AccessKeyID != "" && v.SecretAccessKey != ""
}

// GetLogLevel returns the log level (defaults to info)
func (c *Config) GetLogLevel() string {
	if c.LogLevel != "" {
		return c.LogLevel
	}
	return "info"
}

// GetLogFormat returns the log format (defaults to json)
func (c *Config) GetLogFormat() string {
	if c.LogFormat != "" {
		return c.LogFormat
	}
	return "json"
}
