package model

const (
	DefaultKeyboardName = "Unnamed Keyboard"
	DefaultSwitches     = "No switches given"
	DefaultKeycaps      = "No keycaps given"
	DefaultImage        = "No image given"
)

type Keyboard struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Switches string `gorm:"not null" json:"switches"`
	Keycaps  string `gorm:"not null" json:"keycaps"`
	Image    string `gorm:"not null" json:"image"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
}

func (Keyboard) TableName() string {
	return "keyboards"
}

// KeyboardFields carries the optional inputs of NewKeyboard. UserID has no
// default: a nil owner yields UserID 0, which the repository refuses to insert.
type KeyboardFields struct {
	Name     *string `json:"name"`
	Switches *string `json:"switches"`
	Keycaps  *string `json:"keycaps"`
	Image    *string `json:"image"`
	UserID   *uint   `json:"-"`
}

// KeyboardView is the wire form of a Keyboard. It carries no owner backlink.
type KeyboardView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Switches string `json:"switches"`
	Keycaps  string `json:"keycaps"`
	Image    string `json:"image"`
}

func NewKeyboard(fields KeyboardFields) *Keyboard {
	keyboard := &Keyboard{
		Name:     valueOr(fields.Name, DefaultKeyboardName),
		Switches: valueOr(fields.Switches, DefaultSwitches),
		Keycaps:  valueOr(fields.Keycaps, DefaultKeycaps),
		Image:    valueOr(fields.Image, DefaultImage),
	}
	if fields.UserID != nil {
		keyboard.UserID = *fields.UserID
	}
	return keyboard
}

func (k *Keyboard) Serialize() KeyboardView {
	return KeyboardView{
		ID:       k.ID,
		Name:     k.Name,
		Switches: k.Switches,
		Keycaps:  k.Keycaps,
		Image:    k.Image,
	}
}

func SerializeKeyboards(keyboards []Keyboard) []KeyboardView {
	views := make([]KeyboardView, 0, len(keyboards))
	for i := range keyboards {
		views = append(views, keyboards[i].Serialize())
	}
	return views
}
