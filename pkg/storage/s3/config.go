package s3

// Config holds S3 configuration
type Config struct {
	Region          string `json:"region"`            // AWS region
	Bucket          string `json:"bucket"`            // S3 bucket name
	IdentityPoolID  string `json:"identity_pool_id"`  // Cognito identity pool for federated credentials
	Endpoint        string `json:"endpoint"`          // Optional: S3-compatible endpoint
	ForcePathStyle  bool   `json:"force_path_style"`  // For S3-compatible endpoints
	AccessKeyID     string `json:"access_key_id"`     // Optional: static credentials instead of the pool
	SecretAccessKey string `json:"secret_access_key"`
}
