package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"review-agent-be/internal/constant"
	"review-agent-be/internal/dto"
	"review-agent-be/internal/entity"
	"review-agent-be/internal/pkg/logger"
	"review-agent-be/internal/pkg/mailer"
	"review-agent-be/internal/repository/contract"
	"review-agent-be/pkg/events"
	"review-agent-be/pkg/llm"
	"review-agent-be/pkg/llm/gateway"
	"review-agent-be/pkg/pipeline/prompt"

	"github.com/google/uuid"
)

type reportReply struct {
	ReportHtml string `json:"reportHtml"`
}

var reportSchema = llm.GenerateSchema[reportReply]()

type IReportService interface {
	GenerateDaily(ctx context.Context, userId uuid.UUID) (*dto.ReportResponse, error)
	GenerateWeekly(ctx context.Context, userId uuid.UUID) (*dto.ReportResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ReportResponse, error)
}

type reportService struct {
	users    contract.UserRepository
	analyses contract.AnalysisRepository
	reports  contract.ReportRepository
	gateway  *gateway.Gateway
	prompts  *prompt.Catalog
	mailer   mailer.IEmailService
	notify   INotifyService
	logger   logger.ILogger
	now      func() time.Time
}

func NewReportService(
	users contract.UserRepository,
	analyses contract.AnalysisRepository,
	reports contract.ReportRepository,
	gw *gateway.Gateway,
	prompts *prompt.Catalog,
	emailService mailer.IEmailService,
	notify INotifyService,
	log logger.ILogger,
) IReportService {
	return &reportService{
		users:    users,
		analyses: analyses,
		reports:  reports,
		gateway:  gw,
		prompts:  prompts,
		mailer:   emailService,
		notify:   notify,
		logger:   log,
		now:      time.Now,
	}
}

// GenerateDaily covers yesterday, midnight to midnight local time.
func (s *reportService) GenerateDaily(ctx context.Context, userId uuid.UUID) (*dto.ReportResponse, error) {
	now := s.now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -1)
	return s.generate(ctx, userId, constant.ReportKindDaily, start, end)
}

// GenerateWeekly covers the trailing seven full days.
func (s *reportService) GenerateWeekly(ctx context.Context, userId uuid.UUID) (*dto.ReportResponse, error) {
	now := s.now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -7)
	return s.generate(ctx, userId, constant.ReportKindWeekly, start, end)
}

func (s *reportService) generate(ctx context.Context, userId uuid.UUID, kind int, start, end time.Time) (*dto.ReportResponse, error) {
	user, err := s.users.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", constant.ErrNotFound)
	}

	records, err := s.analyses.FindAllByDateRange(ctx, userId, start, end)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no analyzed sessions in period", constant.ErrNotFound)
	}

	content := s.renderReport(ctx, kind, records)

	report := entity.ReportData{
		Id:          uuid.New(),
		UserId:      userId,
		Kind:        kind,
		Content:     content,
		PeriodStart: start,
		PeriodEnd:   end,
		CreatedAt:   s.now(),
	}
	if err := s.reports.Create(ctx, &report); err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Your %s review report (%s)", kindLabel(kind), start.Format("2006-01-02"))
	if user.Email != "" {
		if err := s.mailer.SendReport(user.Email, subject, content); err != nil {
			s.logger.Warn("report", "report email failed", map[string]interface{}{
				"userId": userId.String(),
				"error":  err.Error(),
			})
		}
	}
	s.notify.Notify(ctx, userId, events.TypeReportReady, subject, map[string]interface{}{
		"reportId": report.Id.String(),
		"kind":     kind,
	})

	return toReportResponse(&report), nil
}

// renderReport asks the model to write the period summary; if the model yields
// nothing usable the raw digest is used instead, a report is never lost to a
// silent model.
func (s *reportService) renderReport(ctx context.Context, kind int, records []*entity.AnalysisRecord) string {
	digest := buildDigest(records)

	promptName := prompt.DailyReport
	if kind == constant.ReportKindWeekly {
		promptName = prompt.WeeklyReport
	}
	systemPrompt, err := s.prompts.Get(promptName)
	if err != nil {
		return digest
	}
	var reply reportReply
	ok, err := s.gateway.CompleteInto(ctx, systemPrompt, digest, &reply,
		llm.WithResponseSchema("PeriodReport", reportSchema))
	if err != nil || !ok || strings.TrimSpace(reply.ReportHtml) == "" {
		if err != nil {
			s.logger.Warn("report", "report model call failed", map[string]interface{}{"error": err.Error()})
		}
		return digest
	}
	return reply.ReportHtml
}

func buildDigest(records []*entity.AnalysisRecord) string {
	var sb strings.Builder
	sb.WriteString("<h2>Analyzed sessions</h2>\n<ul>\n")
	for _, record := range records {
		if record.Status != constant.SessionStatusProcessed {
			continue
		}
		sb.WriteString("<li><strong>")
		sb.WriteString(html.EscapeString(record.ProblemStatement))
		sb.WriteString("</strong><br/>")
		sb.WriteString(html.EscapeString(record.Solution))
		sb.WriteString("</li>\n")
	}
	sb.WriteString("</ul>\n")
	return sb.String()
}

func (s *reportService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ReportResponse, error) {
	reports, err := s.reports.FindAllByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ReportResponse, 0, len(reports))
	for _, report := range reports {
		result = append(result, toReportResponse(report))
	}
	return result, nil
}

func kindLabel(kind int) string {
	if kind == constant.ReportKindWeekly {
		return "weekly"
	}
	return "daily"
}

func toReportResponse(report *entity.ReportData) *dto.ReportResponse {
	return &dto.ReportResponse{
		Id:          report.Id,
		Kind:        report.Kind,
		Content:     report.Content,
		PeriodStart: report.PeriodStart,
		PeriodEnd:   report.PeriodEnd,
		CreatedAt:   report.CreatedAt,
	}
}
