package domain

// AnonymousName имя автора отзыва по умолчанию
const AnonymousName = "Anonymous"

// RecentFeedbackLimit сколько последних отзывов отдается в списке
const RecentFeedbackLimit = 10

// Feedback отзыв посетителя. Только добавление, без редактирования.
type Feedback struct {
	ID        int64
	Name      string
	Rating    int
	Text      string
	CreatedAt int64 // unix seconds
}
