package predict

import "errors"

// ErrNotFitted is returned by Predict/PredictBatch on the zero
// *Predictor (no feature map and no external model configured).
var ErrNotFitted = errors.New("predict: predictor is not fitted")
