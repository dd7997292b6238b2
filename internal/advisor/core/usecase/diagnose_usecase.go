package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"smebig-warroom/internal/advisor/core/domain"
	"smebig-warroom/internal/advisor/core/ports"
	analytics "smebig-warroom/internal/analytics/core/domain"
	dashboard "smebig-warroom/internal/analytics/core/usecase"
)

const (
	// FallbackDiagnosis is returned alongside ErrNarratorFailed.
	FallbackDiagnosis = "顧問連線忙碌中，請稍後再試。"
	// NoDataDiagnosis is returned for clients without transactions.
	NoDataDiagnosis = "缺乏足夠數據進行診斷。"

	maxDiagnosisRunes = 150
)

type DiagnoseInput struct {
	ClientName string
}

type DiagnoseUseCase struct {
	reports ports.ReportPort
	gen     ports.TextGeneratorPort
}

// NewDiagnoseUseCase accepts a nil generator; Execute then fails with
// ErrNarratorUnavailable.
func NewDiagnoseUseCase(reports ports.ReportPort, gen ports.TextGeneratorPort) *DiagnoseUseCase {
	return &DiagnoseUseCase{reports: reports, gen: gen}
}

func (uc *DiagnoseUseCase) Execute(ctx context.Context, in DiagnoseInput) (*domain.Diagnosis, error) {
	client := strings.TrimSpace(in.ClientName)
	if client == "" {
		return nil, ErrInvalidClient
	}

	report, err := uc.reports.Execute(ctx, dashboard.GetDashboardInput{ClientName: client})
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidClient) {
			return nil, ErrInvalidClient
		}
		return nil, fmt.Errorf("build report: %w", err)
	}

	if report.Summary.OrderCount == 0 {
		return &domain.Diagnosis{ClientName: client, Text: NoDataDiagnosis}, nil
	}

	fallback := &domain.Diagnosis{ClientName: client, Text: FallbackDiagnosis, Fallback: true}
	if uc.gen == nil {
		return fallback, ErrNarratorUnavailable
	}

	text, err := uc.gen.GenerateText(ctx, diagnosisPrompt(client, report))
	if err != nil {
		log.WithFields(log.Fields{
			"component":   "diagnose",
			"client_name": client,
		}).WithError(err).Warn("narrative model failed")
		return fallback, fmt.Errorf("%w: %v", ErrNarratorFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fallback, fmt.Errorf("%w: empty answer", ErrNarratorFailed)
	}

	return &domain.Diagnosis{ClientName: client, Text: text}, nil
}

func diagnosisPrompt(client string, r *analytics.Report) string {
	top := r.TopProductNames(3)
	if len(top) == 0 {
		top = []string{"-"}
	}

	var b strings.Builder
	b.WriteString("你是一位嚴厲但具建設性的品牌數據顧問。請根據以下客戶數據進行診斷。\n\n")
	b.WriteString("【客戶資料】\n")
	fmt.Fprintf(&b, "- 品牌：%s\n", client)
	fmt.Fprintf(&b, "- 總營收：$%.0f（%d 筆訂單，%d 位客戶，客單價 $%.0f）\n",
		r.Summary.TotalRevenue, r.Summary.OrderCount, r.Summary.UniqueCustomers, r.Summary.AverageOrderValue)
	b.WriteString("- 六脈體質分數（0-5 分）：\n")
	fmt.Fprintf(&b, "  1. 流量力：%.1f（新客獲取能力）\n", r.Score(analytics.PulseTraffic))
	fmt.Fprintf(&b, "  2. 轉換力：%.1f（訂單成交率）\n", r.Score(analytics.PulseConversion))
	fmt.Fprintf(&b, "  3. 獲利力：%.1f（營收規模）\n", r.Score(analytics.PulseProfit))
	fmt.Fprintf(&b, "  4. 主顧力：%.1f（VIP 80/20 貢獻度）\n", r.Score(analytics.PulseVIP))
	fmt.Fprintf(&b, "  5. 回購力：%.1f（舊客回頭率）\n", r.Score(analytics.PulseRetention))
	fmt.Fprintf(&b, "- 熱銷商品前三名：%s\n\n", strings.Join(top, "、"))
	b.WriteString("【診斷任務】\n")
	b.WriteString("1. 用一段話總結該品牌的最大優勢與最大隱憂。\n")
	b.WriteString("2. 針對分數最低的項目，給出一個具體的行銷活動建議。\n")
	b.WriteString("3. 語氣專業直接，不要講客套話。\n")
	fmt.Fprintf(&b, "4. 總字數限制：%d 字以內。\n", maxDiagnosisRunes)
	return b.String()
}
