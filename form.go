package echoquill

// Default form values.
const (
	DefaultGenre  = GenreFantasy
	DefaultTone   = ToneInspirational
	DefaultLength = LengthMedium
)

// Form holds the values of the story request form.
// It does not validate the theme; that happens when a generate action is triggered.
type Form struct {
	theme  string
	genre  Genre
	tone   Tone
	length Length
}

// NewForm returns a Form with an empty theme and default options.
func NewForm() Form {
	return Form{
		genre:  DefaultGenre,
		tone:   DefaultTone,
		length: DefaultLength,
	}
}

// Theme returns the theme or prompt text as typed.
func (f Form) Theme() string { return f.theme }

// Genre returns the selected genre, falling back to the default when unset.
func (f Form) Genre() Genre {
	if f.genre == "" {
		return DefaultGenre
	}
	return f.genre
}

// Tone returns the selected tone, falling back to the default when unset.
func (f Form) Tone() Tone {
	if f.tone == "" {
		return DefaultTone
	}
	return f.tone
}

// Length returns the selected length, falling back to the default when unset.
func (f Form) Length() Length {
	if f.length == "" {
		return DefaultLength
	}
	return f.length
}

// SetTheme sets the theme text.
func (f *Form) SetTheme(theme string) {
	f.theme = theme
}

// SetGenre selects g and reports whether it is a supported genre.
// Unsupported values leave the form unchanged.
func (f *Form) SetGenre(g Genre) bool {
	if indexOf(Genres(), g) < 0 {
		return false
	}
	f.genre = g
	return true
}

// SetTone selects t and reports whether it is a supported tone.
func (f *Form) SetTone(t Tone) bool {
	if indexOf(Tones(), t) < 0 {
		return false
	}
	f.tone = t
	return true
}

// SetLength selects l and reports whether it is a supported length.
func (f *Form) SetLength(l Length) bool {
	if indexOf(Lengths(), l) < 0 {
		return false
	}
	f.length = l
	return true
}

// CycleGenre moves the genre selection by delta positions, wrapping around.
func (f *Form) CycleGenre(delta int) {
	f.genre = cycle(Genres(), f.Genre(), delta)
}

// CycleTone moves the tone selection by delta positions, wrapping around.
func (f *Form) CycleTone(delta int) {
	f.tone = cycle(Tones(), f.Tone(), delta)
}

// CycleLength moves the length selection by delta positions, wrapping around.
func (f *Form) CycleLength(delta int) {
	f.length = cycle(Lengths(), f.Length(), delta)
}

// Request builds the generation request from the current values.
func (f Form) Request() GenerationRequest {
	return GenerationRequest{
		Theme:  f.Theme(),
		Genre:  f.Genre(),
		Tone:   f.Tone(),
		Length: f.Length(),
	}
}

func indexOf[T comparable](options []T, v T) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return -1
}

func cycle[T comparable](options []T, current T, delta int) T {
	i := indexOf(options, current)
	if i < 0 {
		i = 0
	}
	n := len(options)
	return options[((i+delta)%n+n)%n]
}
