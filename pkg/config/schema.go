package config

// Schema is the JSON schema for validating configuration documents.
// The s3 backend needs either an identity pool or a static key pair; the local
// backend needs neither.
const Schema = `{
    "$schema": "http://json-schema.org/draft-07/schema#",
    "type": "object",
    "properties": {
        "video_upload": {
            "type": "object",
            "properties": {
                "bucket_region": {
                    "type": "string",
                    "minLength": 1
                },
                "identity_pool_id": {
                    "type": "string",
                    "minLength": 1
                },
                "upload_bucket_name": {
                    "type": "string",
                    "minLength": 1
                },
                "s3_upload_startkey": {
                    "type": "string"
                },
                "backend": {
                    "type": "string",
                    "enum": ["s3", "local"]
                },
                "local_path": {
                    "type": "string"
                },
                "endpoint": {
                    "type": "string"
                },
                "force_path_style": {
                    "type": "boolean"
                },
                "access_key_id": {
                    "type": "string"
                },
                "secret_access_key": {
                    "type": "string"
                }
            },
            "required": ["bucket_region", "upload_bucket_name", "s3_upload_startkey"],
            "anyOf": [
                {
                    "required": ["identity_pool_id"]
                },
                {
                    "properties": {
                        "access_key_id": {"minLength": 1},
                        "secret_access_key": {"minLength": 1}
                    },
                    "required": ["access_key_id", "secret_access_key"]
                },
                {
                    "properties": {
                        "backend": {"enum": ["local"]}
                    },
                    "required": ["backend"]
                }
            ]
        },
        "log_level": {
            "type": "string",
            "enum": ["debug", "info", "warn", "error"]
        },
        "log_format": {
            "type": "string",
            "enum": ["json", "console"]
        }
    },
    "required": ["video_upload"]
}`
