// Package decisionlist reduces a search.SearchAll candidate pool into a
// validated, ordered list of projections (find_easy_explain): a greedy
// selection loop that stops as soon as a candidate fails to improve
// held-out validation (accuracy for classification, mean squared error
// for regression), plus a bootstrap routine for picking how
// many list entries a hybrid predictor should trust before falling back
// to an external model.
package decisionlist
