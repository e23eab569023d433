package upload

import (
	"errors"

	"github.com/williamokano/video_uploader/pkg/storage"
)

const (
	NoticeNoFile  = "Please choose a file to upload first."
	NoticeSuccess = "Successfully uploaded video."
	NoticeFailure = "There was an error uploading your video: "
)

// Notice renders the outcome of Dispatch as the message shown to the user
func Notice(err error) string {
	switch {
	case err == nil:
		return NoticeSuccess
	case errors.Is(err, ErrNoFileSelected):
		return NoticeNoFile
	default:
		return NoticeFailure + storage.Message(err)
	}
}
