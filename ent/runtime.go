// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/apatel/gradpath/ent/course"
	"github.com/apatel/gradpath/ent/llmrequestevent"
	"github.com/apatel/gradpath/ent/schema"
	"github.com/apatel/gradpath/ent/student"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescSubject is the schema descriptor for subject field.
	courseDescSubject := courseFields[2].Descriptor()
	// course.DefaultSubject holds the default value on creation for the subject field.
	course.DefaultSubject = courseDescSubject.Default.(string)
	// courseDescCategory is the schema descriptor for category field.
	courseDescCategory := courseFields[3].Descriptor()
	// course.DefaultCategory holds the default value on creation for the category field.
	course.DefaultCategory = courseDescCategory.Default.(string)
	// courseDescCredits is the schema descriptor for credits field.
	courseDescCredits := courseFields[4].Descriptor()
	// course.DefaultCredits holds the default value on creation for the credits field.
	course.DefaultCredits = courseDescCredits.Default.(string)
	// courseDescDifficulty is the schema descriptor for difficulty field.
	courseDescDifficulty := courseFields[5].Descriptor()
	// course.DefaultDifficulty holds the default value on creation for the difficulty field.
	course.DefaultDifficulty = courseDescDifficulty.Default.(int)
	// courseDescDescription is the schema descriptor for description field.
	courseDescDescription := courseFields[8].Descriptor()
	// course.DefaultDescription holds the default value on creation for the description field.
	course.DefaultDescription = courseDescDescription.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescNetid is the schema descriptor for netid field.
	studentDescNetid := studentFields[2].Descriptor()
	// student.DefaultNetid holds the default value on creation for the netid field.
	student.DefaultNetid = studentDescNetid.Default.(string)
	// studentDescName is the schema descriptor for name field.
	studentDescName := studentFields[3].Descriptor()
	// student.DefaultName holds the default value on creation for the name field.
	student.DefaultName = studentDescName.Default.(string)
	// studentDescYear is the schema descriptor for year field.
	studentDescYear := studentFields[4].Descriptor()
	// student.DefaultYear holds the default value on creation for the year field.
	student.DefaultYear = studentDescYear.Default.(string)
	// studentDescMajor is the schema descriptor for major field.
	studentDescMajor := studentFields[5].Descriptor()
	// student.DefaultMajor holds the default value on creation for the major field.
	student.DefaultMajor = studentDescMajor.Default.(string)
	// studentDescID is the schema descriptor for id field.
	studentDescID := studentFields[0].Descriptor()
	// student.DefaultID holds the default value on creation for the id field.
	student.DefaultID = studentDescID.Default.(func() uuid.UUID)
}
