package revision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/thesisai/backend/config"
	revisiondto "github.com/thesisai/backend/internal/dto/revision"
	"k8s.io/klog/v2"
)

// Requester 把 RevisionJob 提交给修订引擎并解析 RevisionResult
// 单次同步请求，不重试不缓存，重试策略归调用方
type Requester struct {
	engineURL string
	apiKey    string
	timeout   time.Duration
	client    *http.Client
}

// NewRequester 创建修订请求器
func NewRequester(cfg *config.Config) *Requester {
	timeout := cfg.Revision.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Requester{
		engineURL: cfg.Revision.EngineURL,
		apiKey:    cfg.Revision.APIKey,
		timeout:   timeout,
		client:    &http.Client{},
	}
}

// Request 提交修订任务
// 错误分类见 errors.go：非2xx -> RequestError；2xx但载荷不合法 -> MalformedResponseError；
// 超时 -> TimeoutError
func (r *Requester) Request(ctx context.Context, job *revisiondto.RevisionJob) (*revisiondto.RevisionResult, error) {
	klog.V(6).Infof("提交修订任务: thesisID=%s, chapterID=%s, scope=%s, comments=%d",
		job.ThesisID, job.ChapterID, job.RevisionScope, len(job.AdvisorCommentIDs))

	body, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal revision job: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "POST", r.engineURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{
				Message: fmt.Sprintf("advisor revision timed out after %s", r.timeout),
			}
		}
		return nil, fmt.Errorf("revision request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read revision response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, r.failureError(resp.StatusCode, payload)
	}

	var result revisiondto.RevisionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, &MalformedResponseError{Reason: "response body is not valid JSON"}
	}
	if !result.ChecklistConsistent() {
		return nil, &MalformedResponseError{
			Reason: fmt.Sprintf("requirement_status length %d does not match checklist length %d",
				len(result.RequirementStatus), len(result.AdvisorRequirementsChecklist)),
		}
	}

	return &result, nil
}

// failureError 优先透传服务端 {error} 信息，否则回退到通用文案
func (r *Requester) failureError(status int, payload []byte) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Error != "" {
		return &RequestError{Status: status, Message: body.Error}
	}
	return &RequestError{
		Status:  status,
		Message: fmt.Sprintf("Advisor revision failed: %d", status),
	}
}
