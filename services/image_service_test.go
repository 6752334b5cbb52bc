package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageExt(t *testing.T) {
	assert.Equal(t, ".png", imageExt("data:image/png;base64,iVBORw0KGgo="))
	assert.Equal(t, ".webp", imageExt("data:image/webp;base64,UklGRg=="))
	assert.Equal(t, ".gif", imageExt("data:image/gif;base64,R0lGODlh"))
	assert.Equal(t, ".jpg", imageExt("data:image/jpeg;base64,/9j/4AAQ"))

	// raw payload without a data-URI header
	assert.Equal(t, ".jpg", imageExt("/9j/4AAQSkZJRg=="))
}
