package models

// Share доля одного значения измерения в переходах по ссылке
type Share struct {
	Name    string
	Count   int
	Percent float64
}

// URLView запись для отображения на дашборде
type URLView struct {
	Record    URLRecord
	ShortURL  string
	CreatedAt string
	Browsers  []Share
	Devices   []Share
	OS        []Share
	Referrers []Share
}

// Dashboard сводка по ссылкам пользователя
type Dashboard struct {
	Username       string
	TotalURLs      int
	TotalClicks    int64
	UniqueVisitors int
	URLs           []URLView
}
