package revision

import (
	"context"
	"strings"

	revisiondto "github.com/thesisai/backend/internal/dto/revision"
	"github.com/thesisai/backend/internal/model"
	"k8s.io/klog/v2"
)

// basicSystemPrompt 基础修订的固定系统指令
const basicSystemPrompt = `You are an academic writing assistant revising thesis text.
Preserve the original meaning at all times.
Do not add headings or structure that the text does not already have.
Maintain a formal academic tone throughout.
If the student provides explicit instructions, prioritize them over general polish.
Return only the revised text, with no commentary.`

// Generator 文本生成能力，对提供方协议不作假设
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// BasicReviser 基础修订：自由指令改写一段文本，无批注对账
type BasicReviser struct {
	gen Generator
}

// NewBasicReviser 创建基础修订器
func NewBasicReviser(gen Generator) *BasicReviser {
	return &BasicReviser{gen: gen}
}

// Revise 执行基础修订
// 授权与输入校验都在任何网络调用之前完成
func (s *BasicReviser) Revise(ctx context.Context, profile *model.Profile, req revisiondto.BasicRevisionRequest) (string, error) {
	if !profile.HasFeature(model.FeatureBasicRevision) {
		return "", &ForbiddenError{Feature: string(model.FeatureBasicRevision)}
	}
	if strings.TrimSpace(req.Text) == "" {
		return "", &ValidationError{Field: "text", Reason: "must not be empty"}
	}

	userPrompt := buildBasicPrompt(req)
	klog.V(6).Infof("基础修订请求: textLen=%d, hasInstruction=%v",
		len(req.Text), req.Instruction != "")

	revised, err := s.gen.Generate(ctx, basicSystemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	return revised, nil
}

// buildBasicPrompt 把指令和原文拼成单个提示词
func buildBasicPrompt(req revisiondto.BasicRevisionRequest) string {
	var b strings.Builder
	if req.Instruction != "" {
		b.WriteString("Instruction: ")
		b.WriteString(req.Instruction)
		b.WriteString("\n\n")
	}
	b.WriteString("Text to revise:\n")
	b.WriteString(req.Text)
	return b.String()
}
