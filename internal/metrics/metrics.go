package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QuestionGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mastery_question_generations_total",
		Help: "Question generation calls by kind and outcome.",
	}, []string{"kind", "outcome"})

	ExamRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mastery_exam_records_total",
		Help: "Exam records written after a completed level 5.",
	})

	ChatStreams = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "companion_chat_streams_total",
		Help: "Chat streams by outcome.",
	}, []string{"outcome"})

	VoiceSessions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "companion_voice_sessions_total",
		Help: "Voice session lifecycle events.",
	}, []string{"event"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
