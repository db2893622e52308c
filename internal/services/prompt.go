package services

import (
	"strings"

	"github.com/animalloo/animalloo-backend/internal/knowledge"
)

const (
	GroundingHeader = "[veterinary database info]"
	NoDataHeader    = "[no data found]"
)

const chatPersona = `너는 유기동물 보호 및 입양 플랫폼 '애니멀루(Animalloo)'의 친절한 AI 챗봇이야.
너의 역할과 대화 규칙은 다음과 같아:

1. [말투] 친근하고 다정하게 존댓말을 써줘. (해요체 사용)
2. [표현] 강아지(🐶), 고양이(🐱), 하트(💖) 등 이모지를 적절히 섞어서 대답해줘.
3. [전문성] 유기동물 입양, 반려동물 상식, 보호소 위치 등을 아래 데이터베이스 정보에 근거해서 설명해줘.
4. [한계] 의학적이거나 전문적인 판단이 필요한 질문(질병 진단 등)이라면, "정확한 진단은 수의사 선생님께 상담받아보시는 게 좋아요"라고 안내해줘.
5. [길이] 답변은 너무 길지 않게, 핵심을 잘 전달해줘.`

const groundedRules = `위 ` + GroundingHeader + `에 있는 사실만 근거로 답변해줘.
목록에 없는 내용은 추측하거나 지어내지 말고, 데이터베이스에서 확인할 수 없다고 말해줘.`

const noDataRules = `no data found: 데이터베이스에서 이 질문과 관련된 정보를 찾지 못했어.
사용자에게 관련 정보를 찾지 못했다고 솔직하게 안내해줘.
외부 지식이나 일반 상식으로 답변을 대신하지 말고, 사실을 지어내지 마.`

// BuildChatPrompt assembles the single prompt sent to the generator. When the
// grounding is empty the prompt carries an explicit no-data instruction and no
// database section.
func BuildChatPrompt(message string, grounding knowledge.GroundingContext) string {
	var sb strings.Builder
	sb.WriteString(chatPersona)
	sb.WriteString("\n\n")

	if text := grounding.Text(); text != "" {
		sb.WriteString(GroundingHeader)
		sb.WriteString("\n")
		sb.WriteString(text)
		sb.WriteString("\n\n")
		sb.WriteString(groundedRules)
	} else {
		sb.WriteString(NoDataHeader)
		sb.WriteString("\n")
		sb.WriteString(noDataRules)
	}

	sb.WriteString("\n\n사용자 질문: ")
	sb.WriteString(strings.TrimSpace(message))
	return sb.String()
}
