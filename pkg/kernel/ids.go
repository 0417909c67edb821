package kernel

type PostingID string

func NewPostingID(id string) PostingID { return PostingID(id) }
func (p PostingID) String() string     { return string(p) }
func (p PostingID) IsEmpty() bool      { return string(p) == "" }

type JobTitle string

func (t JobTitle) String() string { return string(t) }

type CompanyName string

func (c CompanyName) String() string { return string(c) }
