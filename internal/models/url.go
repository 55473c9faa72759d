// Package models содержит типы данных, которыми веб-клиент обменивается
// с внешним API сокращения ссылок и с шаблонами страниц.
package models

// RecordID идентификатор записи. API отдает его то числом, то строкой.
type RecordID string

// UnmarshalJSON принимает и число, и строку
func (id *RecordID) UnmarshalJSON(data []byte) error {
	v, _, err := decodeID(data)
	if err != nil {
		return err
	}
	*id = RecordID(v)
	return nil
}

// URLRecord запись о короткой ссылке в формате внешнего API
type URLRecord struct {
	ID        RecordID  `json:"ID"`
	ShortCode string    `json:"ShortCode"`
	FullURL   string    `json:"FullURL"`
	CreatedAt string    `json:"CreatedAt"`
	Analytics Analytics `json:"Analitics"`
}

// Analytics статистика переходов по ссылке.
// Каждый срез содержит значение измерения для одного перехода.
type Analytics struct {
	Click    int64    `json:"Click"`
	IPs      []string `json:"IPsWhoVisited"`
	Browsers []string `json:"BrowserWhoVisited"`
	Devices  []string `json:"DeviceWhoVisited"`
	OS       []string `json:"OSWhoVisited"`
	Referrer []string `json:"ReferrerWhoVisited"`
}

// URLListResponse ответ GET /get-all-urls/{userID}
type URLListResponse struct {
	Data []URLRecord `json:"data"`
}
