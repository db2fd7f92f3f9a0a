package eventbus

// 전역 토픽/이벤트 타입 선언: 기능별 이름을 한 곳에서 관리합니다.

const (
	TopicPackEvents     = "viralpack.pack.events"
	TopicWaitlistEvents = "viralpack.waitlist.events"
)

const (
	EventPackGenerated  = "pack.generated"
	EventWaitlistJoined = "waitlist.joined"
)
