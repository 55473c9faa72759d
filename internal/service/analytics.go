package service

import (
	"sort"
	"strings"
	"time"

	"github.com/InQaaaaGit/trunc_web/internal/models"
)

const (
	// CreatedAtLayout формат даты создания ссылки на дашборде
	CreatedAtLayout = "Jan 02, 2006 15:04:05"
	unknownValue    = "Unknown"
)

// BuildDashboard считает сводку и разбивки переходов по ссылкам пользователя
func BuildDashboard(username string, records []models.URLRecord, shortLinkBase string) *models.Dashboard {
	d := &models.Dashboard{
		Username:  username,
		TotalURLs: len(records),
		URLs:      make([]models.URLView, 0, len(records)),
	}

	visitors := make(map[string]struct{})
	for _, rec := range records {
		d.TotalClicks += rec.Analytics.Click
		for _, ip := range rec.Analytics.IPs {
			visitors[ip] = struct{}{}
		}

		d.URLs = append(d.URLs, models.URLView{
			Record:    rec,
			ShortURL:  ShortURL(shortLinkBase, rec.ShortCode),
			CreatedAt: FormatCreatedAt(rec.CreatedAt),
			Browsers:  Breakdown(rec.Analytics.Browsers, rec.Analytics.Click),
			Devices:   Breakdown(rec.Analytics.Devices, rec.Analytics.Click),
			OS:        Breakdown(rec.Analytics.OS, rec.Analytics.Click),
			Referrers: Breakdown(rec.Analytics.Referrer, rec.Analytics.Click),
		})
	}
	d.UniqueVisitors = len(visitors)

	return d
}

// Breakdown группирует значения и считает долю каждого от числа переходов.
// Результат отсортирован по убыванию количества, при равенстве по имени.
func Breakdown(values []string, clicks int64) []models.Share {
	if len(values) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			v = unknownValue
		}
		counts[v]++
	}

	total := clicks
	if total < 1 {
		total = 1
	}

	shares := make([]models.Share, 0, len(counts))
	for name, count := range counts {
		shares = append(shares, models.Share{
			Name:    name,
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Name < shares[j].Name
	})

	return shares
}

// FormatCreatedAt приводит дату RFC 3339 к виду для дашборда, остальное возвращает как есть
func FormatCreatedAt(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format(CreatedAtLayout)
}

// ShortURL собирает публичную короткую ссылку
func ShortURL(base, code string) string {
	if code == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + code
}
