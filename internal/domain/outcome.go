package domain

// FulfillmentState はインテントの最終状態を表します。
type FulfillmentState string

const (
	// StateFulfilled は画像の生成と配信が完了したことを示します。
	StateFulfilled FulfillmentState = "Fulfilled"
	// StateFailed はパイプラインのいずれかの段階で失敗したことを示します。
	StateFailed FulfillmentState = "Failed"
)

// Outcome は 1 回の呼び出しに対して必ず 1 度だけ返される終端結果です。
// Message は対話ランタイムにそのまま渡されるユーザー向け文面であり、
// 失敗時の診断情報はログにのみ記録されます。
type Outcome struct {
	State   FulfillmentState
	Message string
}

// Fulfilled は成功結果を生成します。
func Fulfilled(message string) Outcome {
	return Outcome{State: StateFulfilled, Message: message}
}

// Failed は失敗結果を生成します。
func Failed(message string) Outcome {
	return Outcome{State: StateFailed, Message: message}
}
