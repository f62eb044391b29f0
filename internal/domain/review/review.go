package review

// Review is a read-only record owned by the external data source. Rating is
// expected in the 1-5 range but not enforced here.
type Review struct {
	ID      string
	Name    string
	Avatar  string
	Rating  int
	Comment string
	Date    string
}
