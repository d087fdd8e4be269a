package dto

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"eduanalytics_backend/internals/features/feedback/model"
)

func TestFromFeedbackModelNilTags(t *testing.T) {
	resp := FromFeedbackModel(model.FeedbackModel{FeedbackType: "course"})

	// tags nil diserialisasi sebagai [] bukan null
	assert.NotNil(t, resp.Tags)
	assert.Empty(t, resp.Tags)
}

func TestCreateFeedbackRequestToModel(t *testing.T) {
	rating := 4
	req := CreateFeedbackRequest{
		Type:   "course",
		Text:   "materi jelas",
		Rating: &rating,
		Tags:   []string{"material", "clarity"},
	}
	m := req.ToModel()

	assert.Equal(t, "course", m.FeedbackType)
	assert.Equal(t, pq.StringArray{"material", "clarity"}, m.FeedbackTags)
	assert.Equal(t, 4, *m.FeedbackRating)
	assert.Nil(t, m.FeedbackSentiment)
}
