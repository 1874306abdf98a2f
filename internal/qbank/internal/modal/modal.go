// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package modal

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"strconv"
	"sync"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
)

const (
	FragmentComponent = "mod_quiz"
	FragmentCallback  = "switch_question_bank"

	selectionSelector = ".search-banks .form-autocomplete-selection"
	hiddenClass       = "d-none"
)

// ErrSuperseded 加载期间又有新的加载，结果被丢弃
var ErrSuperseded = errors.New("弹窗内容已经被新的加载替换")

var goBackTpl = template.Must(template.New("go_back").Parse(
	`<button type="button" class="btn btn-primary" data-action="go-back" value="{{.BankModID}}">{{.Text}}</button>`))

// FragmentLoader 加载服务端渲染的 HTML 片段
type FragmentLoader interface {
	LoadFragment(ctx context.Context, component, callback string,
		contextID int64, params map[string]string) (string, error)
}

// Autocompleter 把 select 增强为可以搜索的输入框
type Autocompleter interface {
	Enhance(ctx context.Context, selector, placeholder string) error
}

type Config struct {
	Large         bool
	Show          bool
	RemoveOnClose bool
	ContextID     int64
	AddOnPage     int64
	QuizModID     int64
	BankModID     int64
	OriginalTitle string
}

// AddQuestionModal 测验中添加题目的弹窗，这里只负责切换题库的那一页
type AddQuestionModal struct {
	mu      sync.RWMutex
	cfg     Config
	title   string
	footer  string
	body    string
	classes map[string][]string
	// loading 每次加载加一，只有最新的一次加载能写入 body
	loading uint64

	courseOpenBanks     []domain.Bank
	allOpenBanks        []domain.Bank
	recentlyViewedBanks []domain.Bank

	loader FragmentLoader
	ac     Autocompleter
}

func NewAddQuestionModal(cfg Config, loader FragmentLoader, ac Autocompleter) *AddQuestionModal {
	return &AddQuestionModal{
		cfg:     cfg,
		title:   cfg.OriginalTitle,
		classes: make(map[string][]string),
		loader:  loader,
		ac:      ac,
	}
}

func (m *AddQuestionModal) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

func (m *AddQuestionModal) Title() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.title
}

func (m *AddQuestionModal) SetTitle(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.title = title
}

func (m *AddQuestionModal) Footer() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.footer
}

func (m *AddQuestionModal) SetFooter(footer string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.footer = footer
}

func (m *AddQuestionModal) Body() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.body
}

func (m *AddQuestionModal) SetBody(body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading++
	m.body = body
}

// Classes 返回副本
func (m *AddQuestionModal) Classes() map[string][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make(map[string][]string, len(m.classes))
	for sel, cls := range m.classes {
		res[sel] = append([]string(nil), cls...)
	}
	return res
}

func (m *AddQuestionModal) AddClass(selector, class string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slice.Contains(m.classes[selector], class) {
		return
	}
	m.classes[selector] = append(m.classes[selector], class)
}

func (m *AddQuestionModal) CourseOpenBanks() []domain.Bank {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.courseOpenBanks
}

func (m *AddQuestionModal) SetCourseOpenBanks(banks []domain.Bank) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courseOpenBanks = banks
}

func (m *AddQuestionModal) AllOpenBanks() []domain.Bank {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.allOpenBanks
}

func (m *AddQuestionModal) SetAllOpenBanks(banks []domain.Bank) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allOpenBanks = banks
}

func (m *AddQuestionModal) RecentlyViewedBanks() []domain.Bank {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.recentlyViewedBanks
}

func (m *AddQuestionModal) SetRecentlyViewedBanks(banks []domain.Bank) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recentlyViewedBanks = banks
}

// GoBack 回到添加题目的页面
func (m *AddQuestionModal) GoBack() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading++
	m.title = m.cfg.OriginalTitle
	m.footer = ""
	m.body = ""
}

// HandleSwitchBankContentReload 把弹窗切换到选择题库的页面
// 加载期间如果有新的加载，返回 ErrSuperseded，弹窗保持新的加载的内容
func (m *AddQuestionModal) HandleSwitchBankContentReload(ctx context.Context, selector string) error {
	cfg := m.Config()
	m.SetTitle(domain.Str("selectquestionbank"))
	footer, err := goBackButton(cfg.BankModID)
	if err != nil {
		return err
	}
	m.SetFooter(footer)

	m.mu.Lock()
	m.loading++
	current := m.loading
	m.mu.Unlock()

	body, err := m.loader.LoadFragment(ctx, FragmentComponent, FragmentCallback, cfg.ContextID,
		map[string]string{
			"quizcmid":  strconv.FormatInt(cfg.QuizModID, 10),
			"bankmodid": strconv.FormatInt(cfg.BankModID, 10),
		})
	if err != nil {
		return err
	}

	m.mu.Lock()
	if current != m.loading {
		m.mu.Unlock()
		return ErrSuperseded
	}
	m.body = body
	m.mu.Unlock()

	err = m.ac.Enhance(ctx, selector, domain.Str("searchbyname"))
	if err != nil {
		return err
	}
	m.AddClass(selectionSelector, hiddenClass)
	return nil
}

func goBackButton(bankModID int64) (string, error) {
	var buf bytes.Buffer
	err := goBackTpl.Execute(&buf, struct {
		BankModID int64
		Text      string
	}{BankModID: bankModID, Text: domain.Str("gobacktoquiz")})
	return buf.String(), err
}
