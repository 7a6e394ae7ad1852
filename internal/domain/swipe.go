package domain

// SwipeDirection is the decision taken on the current discovery candidate.
type SwipeDirection string

const (
	SwipeReject    SwipeDirection = "reject"
	SwipeLike      SwipeDirection = "like"
	SwipeSuperlike SwipeDirection = "superlike"
)

func (d SwipeDirection) Valid() bool {
	switch d {
	case SwipeReject, SwipeLike, SwipeSuperlike:
		return true
	}
	return false
}
