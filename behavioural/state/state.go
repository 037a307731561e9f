// Package state implements the State pattern over a document lifecycle.
//
// A Document holds exactly one DocumentState. Render and Publish are delegated
// to the held variant, and a variant's Publish may replace itself on the
// document via SetState. Legality of transitions lives entirely in which
// variant chooses to call SetState:
//
//	Draft --publish--> Moderation --publish--> Published --publish--> Published
//
// All observable behaviour is text written to the document's output.
package state

// Mode names a lifecycle variant.
type Mode string

const (
	ModeDraft      Mode = "draft"
	ModeModeration Mode = "moderation"
	ModePublished  Mode = "published"
)

// DocumentState is the capability whose implementation varies with the
// document's lifecycle.
type DocumentState interface {
	// Render writes a line identifying the current mode. It never changes state.
	Render(d *Document)
	// Publish writes a line describing the transition and, for non-terminal
	// variants, moves the document to the next variant.
	Publish(d *Document)
	Mode() Mode
}

// Draft is the initial variant.
type Draft struct{}

func (Draft) Render(d *Document) {
	d.println("Rendering the document in draft mode.")
}

func (Draft) Publish(d *Document) {
	d.println("Document is now in moderation.")
	d.SetState(Moderation{})
}

func (Draft) Mode() Mode { return ModeDraft }

// Moderation is the review variant between Draft and Published.
type Moderation struct{}

func (Moderation) Render(d *Document) {
	d.println("Rendering the document in moderation mode.")
}

func (Moderation) Publish(d *Document) {
	d.println("Document has been published.")
	d.SetState(Published{})
}

func (Moderation) Mode() Mode { return ModeModeration }

// Published is terminal; Publish only reports it.
type Published struct{}

func (Published) Render(d *Document) {
	d.println("Rendering the document in published mode.")
}

func (Published) Publish(d *Document) {
	d.println("Document is already published.")
}

func (Published) Mode() Mode { return ModePublished }
